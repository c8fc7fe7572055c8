package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// replCmd is a debugging aid, not part of the protocol core (SPEC_FULL.md
// §D): it dials a running proxy's downstream listener in a raw-mode
// terminal session, lets an operator hand-type record bodies, and prints
// whatever framed records come back.
var replFlags struct {
	connect string
}

var replCmd = &cobra.Command{
	Use:    "repl",
	Short:  "Interactive raw-mode session against a running proxy",
	Hidden: true,
	RunE:   runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replFlags.connect, "connect", "127.0.0.1:8090", "Proxy downstream address (host:port)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	conn, err := net.Dial("tcp", replFlags.connect)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", replFlags.connect, err)
	}
	defer conn.Close()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runReplLineMode(conn)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Fprintf(os.Stdout, "connected to %s. Ctrl-D to exit.\r\n", replFlags.connect)

	go replReadResponses(conn)
	return replReadInput(conn)
}

// runReplLineMode is used when stdin isn't a terminal (e.g. piped input in
// tests), skipping term.MakeRaw entirely.
func runReplLineMode(conn net.Conn) error {
	go replReadResponses(conn)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		conn.Write(proto.WrapString(scanner.Text()))
	}
	return scanner.Err()
}

// replReadInput echoes keystrokes, supports backspace, and sends a framed
// record to conn on Enter. Runs until Ctrl-D (EOT), Ctrl-C or a read error.
func replReadInput(conn net.Conn) error {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			return err
		}
		b := buf[0]
		switch {
		case b == 0x04: // Ctrl-D
			return nil
		case b == 0x03: // Ctrl-C
			return nil
		case b == '\r' || b == '\n':
			fmt.Fprint(os.Stdout, "\r\n")
			conn.Write(proto.WrapString(string(line)))
			line = line[:0]
		case b == 0x7f || b == 0x08: // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(os.Stdout, "\b \b")
			}
		default:
			line = append(line, b)
			fmt.Fprintf(os.Stdout, "%c", b)
		}
	}
}

func replReadResponses(conn net.Conn) {
	framer := proto.NewFramer()
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, body := range framer.Feed(buf[:n]) {
				fmt.Fprintf(os.Stdout, "\r\n< %s\r\n", body)
			}
		}
		if err != nil {
			return
		}
	}
}
