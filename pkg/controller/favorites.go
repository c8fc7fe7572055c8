package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Favorites implements the FavoritesController (spec.md §4.5 Favorites):
// structurally identical to Sources, differing only in wire prefix and
// backing model type (SPEC_FULL.md §C.5).
type Favorites struct {
	Basis
	model *model.Model
}

// NewFavorites constructs a favorites controller over the shared model.
func NewFavorites(basis Basis, m *model.Model) *Favorites {
	return &Favorites{Basis: basis, model: m}
}

// Init registers the favorite request patterns and name notification.
func (c *Favorites) Init() {
	c.Server.RegisterRequest("favorite:query", proto.ReqFavoriteQuery, 2, c.onQuery)
	c.Server.RegisterRequest("favorite:set-name", proto.ReqFavoriteSetName, 3, c.onSetName)
	c.Client.RegisterNotification("favorite:name", proto.RespFavoriteName, 3, c.notifyName)
}

func (c *Favorites) onQuery(conn servercm.Connection, body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	fav, err := c.model.Favorite(model.Identifier(id))
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if !fav.NameInitialized() {
		c.ProxyObservation(conn, body, proto.RespFavoriteQueryComplete, 2, nil, c.onQuery)
		return
	}
	c.Server.SendResponse(conn, proto.FormatFavoriteName(id, fav.Name()))
	c.Server.SendResponse(conn, []byte("QC"+itoaInt(id)))
}

func (c *Favorites) onSetName(conn servercm.Connection, body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if _, err := c.model.Favorite(model.Identifier(id)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespFavoriteName, 3, c.notifyName)
}

func (c *Favorites) notifyName(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	fav, err := c.model.Favorite(model.Identifier(id))
	if err != nil {
		return
	}
	fav.SetName(groups[2])
}

// QueryCurrentConfiguration synthesizes every favorite's display name for
// the Configuration controller's QX dump.
func (c *Favorites) QueryCurrentConfiguration() []byte {
	var out []byte
	for _, fav := range c.model.Favorites() {
		out = append(out, proto.Wrap(proto.FormatFavoriteName(int(fav.ID()), fav.Name()))...)
	}
	return out
}
