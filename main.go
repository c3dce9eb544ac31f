package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmllex/parser"
)

var (
	emitEOF  = kingpin.Flag("eof", "Emit an EOF token at the end of input").Bool()
	rawText  = kingpin.Flag("raw-text", "Element whose content is tokenized as script data").Default("script").Strings()
	format   = kingpin.Flag("format", "Output format").Short('f').Default("text").Enum("text", "json")
	logLevel = kingpin.Flag("log-level", "Log level (trace shows every state transition)").Default("warning").String()
	file     = kingpin.Arg("file", "HTML file to tokenize, stdin if omitted").ExistingFile()
)

type jsonAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonToken struct {
	Type        string          `json:"type"`
	Tag         string          `json:"tag,omitempty"`
	SelfClosing bool            `json:"selfClosing,omitzero"`
	Attributes  []jsonAttribute `json:"attributes,omitempty"`
	Data        string          `json:"data,omitempty"`
}

func toJSONToken(t parser.Token) jsonToken {
	jt := jsonToken{Type: t.Type().String()}
	switch t := t.(type) {
	case parser.StartTag:
		jt.Tag = t.Tag
		jt.SelfClosing = t.SelfClosing
		for _, a := range t.Attributes {
			jt.Attributes = append(jt.Attributes, jsonAttribute{Name: a.Name, Value: a.Value})
		}
	case parser.EndTag:
		jt.Tag = t.Tag
	case parser.Char:
		jt.Data = string(rune(t))
	case parser.EOF:
	}
	return jt
}

func readInput() (string, error) {
	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return "", errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(b), nil
}

func run(log *logrus.Logger) error {
	html, err := readInput()
	if err != nil {
		return err
	}

	opts := []parser.Option{parser.WithLogger(log)}
	if *emitEOF {
		opts = append(opts, parser.WithEOFToken())
	}
	tokens, err := parser.NewParser(html, parser.NewRawTextSwitch(*rawText...), opts...).Start()
	if err != nil {
		return err
	}
	log.WithField("tokens", len(tokens)).Debug("tokenized input")

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, t := range tokens {
		if *format == "json" {
			b, err := json.Marshal(toJSONToken(t))
			if err != nil {
				return errors.Wrap(err, "encode token")
			}
			w.Write(b)
			w.WriteByte('\n')
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", t.Type(), t)
	}
	return nil
}

func main() {
	kingpin.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		kingpin.Fatalf("invalid log level: %s", err)
	}
	log.SetLevel(level)

	if err := run(log); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}
