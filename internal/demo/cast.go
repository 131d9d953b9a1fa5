package demo

import (
	"bufio"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the terminal before each frame
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciinema v2 recording. Each frame
// is emitted as one output event at the sum of the delays before it.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	bw := bufio.NewWriter(w)

	header, err := json.Marshal(castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Env:     map[string]string{"TERM": "xterm-256color"},
	})
	if err != nil {
		return err
	}
	if _, err := bw.Write(append(header, '\n')); err != nil {
		return err
	}

	var elapsed float64
	for _, f := range frames {
		elapsed += f.Delay.Seconds()
		// asciinema replays raw terminal output, so lines need CRLF
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		event, err := json.Marshal([]any{elapsed, "o", data})
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(event, '\n')); err != nil {
			return err
		}
	}

	return bw.Flush()
}
