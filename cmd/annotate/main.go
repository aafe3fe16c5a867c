package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	xmlparser "github.com/tamerh/xml-stream-parser"

	"github.com/pepperkit/stopwords/pkg/config"
	"github.com/pepperkit/stopwords/pkg/english"
	"github.com/pepperkit/stopwords/pkg/pipeline"
	"github.com/pepperkit/stopwords/pkg/stopwords"
)

const XMLStreamBufferSize = 1024 * 1024 // 1MB

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	filePath := flag.String("file", "", "annotate the contents of this text file")
	xmlPath := flag.String("xml", "", "annotate abstracts from a wiki abstract XML dump")
	customList := flag.String("custom-list", "", "comma separated stop words")
	listFile := flag.String("list-file", "", "newline separated stop words file")
	resource := flag.String("resource", "", "bundled stop words resource, e.g. english.txt")
	posCategories := flag.String("pos-categories", "", "comma separated POS categories to stop")
	shorterThan := flag.String("shorter-than", "", "stop words shorter than this length")
	lemmasShorterThan := flag.String("lemmas-shorter-than", "", "stop lemmas shorter than this length")
	checkOnlyLemmas := flag.String("check-only-lemmas", "", "restrict lexical matching to lemmas (true/false)")
	contentOnly := flag.Bool("content", false, "print surviving content lemmas instead of the token table")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	props := cfg.Properties()
	setIfGiven(props, stopwords.PropCustomList, *customList)
	setIfGiven(props, stopwords.PropCustomListFilePath, *listFile)
	setIfGiven(props, stopwords.PropCustomListResourcesPath, *resource)
	setIfGiven(props, stopwords.PropPosCategories, *posCategories)
	setIfGiven(props, stopwords.PropWordsShorterThan, *shorterThan)
	setIfGiven(props, stopwords.PropLemmasShorterThan, *lemmasShorterThan)
	setIfGiven(props, stopwords.PropCheckOnlyLemmas, *checkOnlyLemmas)

	annotator, err := stopwords.NewAnnotator(props)
	if err != nil {
		log.Fatal(err)
	}
	p, err := pipeline.NewPipeline(english.NewTokenizer(), english.NewTagger(), english.NewLemmatizer(), annotator)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *xmlPath != "":
		if err := annotateDump(p, annotator, *xmlPath, *contentOnly); err != nil {
			log.Fatal(err)
		}
	case *filePath != "":
		data, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatal(err)
		}
		annotateText(p, annotator, string(data), *contentOnly)
	default:
		text := strings.Join(flag.Args(), " ")
		if text == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				log.Fatal(err)
			}
			text = string(data)
		}
		annotateText(p, annotator, text, *contentOnly)
	}
}

func setIfGiven(props stopwords.Properties, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func annotateText(p *pipeline.Pipeline, annotator *stopwords.Annotator, text string, contentOnly bool) {
	doc := pipeline.NewDocument(text)
	p.Annotate(doc)

	if contentOnly {
		fmt.Println(strings.Join(annotator.ContentLemmas(doc), " "))
		return
	}
	for _, token := range doc.Tokens {
		if stopped, ok := token.Annotation(stopwords.AnnotatorName); ok {
			fmt.Printf("%s\t%s\t%s\t%t\n", token.Word, token.Lemma, token.Tag, stopped)
		} else {
			fmt.Printf("%s\t%s\t%s\t-\n", token.Word, token.Lemma, token.Tag)
		}
	}
}

// annotateDump streams a wiki abstract XML dump and prints each document's
// title with its surviving content lemmas.
func annotateDump(p *pipeline.Pipeline, annotator *stopwords.Annotator, path string, contentOnly bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing xml file failed: %s\n", err.Error())
		}
	}(f)

	buffer := bufio.NewReaderSize(f, XMLStreamBufferSize)
	parser := xmlparser.NewXMLParser(buffer, "doc")

	for xmlElement := range parser.Stream() {
		if xmlElement.Name != "doc" {
			continue
		}
		title := childText(xmlElement, "title")
		abstract := childText(xmlElement, "abstract")
		if abstract == "" {
			continue
		}

		doc := pipeline.NewDocument(abstract)
		p.Annotate(doc)

		if contentOnly {
			fmt.Printf("%s\t%s\n", title, strings.Join(annotator.ContentLemmas(doc), " "))
			continue
		}
		stopped := annotator.Mask(doc).GetCardinality()
		fmt.Printf("%s\t%d tokens\t%d stopped\n", title, len(doc.Tokens), stopped)
	}
	return nil
}

func childText(element *xmlparser.XMLElement, name string) string {
	children, ok := element.Childs[name]
	if !ok || len(children) == 0 {
		return ""
	}
	return children[0].InnerText
}
