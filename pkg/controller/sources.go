package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Sources implements the SourcesController (spec.md §4.5 Sources): a
// read-mostly family with a single writable attribute, display name.
type Sources struct {
	Basis
	model *model.Model
}

// NewSources constructs a sources controller over the shared model.
func NewSources(basis Basis, m *model.Model) *Sources {
	return &Sources{Basis: basis, model: m}
}

// Init registers the source request patterns and name notification.
func (c *Sources) Init() {
	c.Server.RegisterRequest("source:query", proto.ReqSourceQuery, 2, c.onQuery)
	c.Server.RegisterRequest("source:set-name", proto.ReqSourceSetName, 3, c.onSetName)
	c.Client.RegisterNotification("source:name", proto.RespSourceName, 3, c.notifyName)
}

func (c *Sources) onQuery(conn servercm.Connection, body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	source, err := c.model.Source(model.Identifier(id))
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if !source.NameInitialized() {
		c.ProxyObservation(conn, body, proto.RespSourceQueryComplete, 2, nil, c.onQuery)
		return
	}
	c.Server.SendResponse(conn, proto.FormatSourceName(id, source.Name()))
	c.Server.SendResponse(conn, []byte("QS"+itoaInt(id)))
}

func (c *Sources) onSetName(conn servercm.Connection, body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if _, err := c.model.Source(model.Identifier(id)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespSourceName, 3, c.notifyName)
}

func (c *Sources) notifyName(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	source, err := c.model.Source(model.Identifier(id))
	if err != nil {
		return
	}
	source.SetName(groups[2])
}

// QueryCurrentConfiguration synthesizes every source's display name for
// the Configuration controller's QX dump.
func (c *Sources) QueryCurrentConfiguration() []byte {
	var out []byte
	for _, source := range c.model.Sources() {
		out = append(out, proto.Wrap(proto.FormatSourceName(int(source.ID()), source.Name()))...)
	}
	return out
}
