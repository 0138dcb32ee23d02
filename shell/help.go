package shell

import (
	"embed"
	"strings"
)

//go:embed helptext
var helptext embed.FS

func usageTopic(topic string) (string, error) {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(dat), "\n"), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := "usage"
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	text, err := usageTopic(topic)
	if err != nil {
		return msg("There is no help text for the topic " + topic), nil
	}
	return msg(text), nil
}
