package shell

import (
	"embed"
	"io"
	"strings"
)

//go:embed helptext
var helptext embed.FS

func usage(w io.Writer) {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		io.WriteString(w, "Error loading helptext: "+err.Error())
		return
	}
	w.Write(dat)
}

func usageTopic(w io.Writer, topic string) {
	dat, err := helptext.ReadFile("helptext/" + strings.ToLower(topic) + ".txt")
	if err != nil {
		io.WriteString(w, "There is no help text for the topic "+topic+"\n")
		return
	}
	w.Write(dat)
}
