package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"
)

type locale struct {
	Name              string
	Tag               string
	Currency          string
	Symbol            string
	Separator         string
	DecimalMark       string
	Pattern           string
	NegativePattern   string
	AlternateGrouping bool
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "codegen",
	})

	// Open the input file and read its contents
	src := filepath.Join("scripts", "locale", "locale_data.csv")
	data, err := readCsvFile(src)
	if err != nil {
		logger.Fatal("reading CSV file", "file", src, "err", err)
	}

	// Convert the CSV records to a list of locales
	locs, err := convertDataToLocales(data)
	if err != nil {
		logger.Fatal("converting CSV records", "file", src, "err", err)
	}

	// Generate Go code from the locales using a template
	tmpl := filepath.Join("scripts", "locale", "locale_data.tmpl")
	code, err := generateGoCode(tmpl, locs)
	if err != nil {
		logger.Fatal("generating Go code", "template", tmpl, "err", err)
	}

	// Write the generated Go code to a file
	dst := "locale_data.go"
	err = writeToFile(dst, code)
	if err != nil {
		logger.Fatal("writing file", "file", dst, "err", err)
	}
	logger.Info("generated locale tables", "file", dst, "locales", len(locs))
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToLocales(data [][]string) ([]locale, error) {
	// Sort the CSV records by language tag, "und" goes first,
	// as it has to be the zero value of the Locale type.
	less := func(i, j int) bool {
		a := data[i][1]
		b := data[j][1]
		switch {
		case a == "und":
			return b != "und"
		case b == "und":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	// Convert the CSV records to locales
	locs := []locale{}
	for _, rec := range data {
		alt, err := strconv.ParseBool(rec[8])
		if err != nil {
			return nil, fmt.Errorf("locale %v: %w", rec[1], err)
		}
		loc := locale{
			Name:              rec[0],
			Tag:               rec[1],
			Currency:          rec[2],
			Symbol:            rec[3],
			Separator:         rec[4],
			DecimalMark:       rec[5],
			Pattern:           rec[6],
			NegativePattern:   rec[7],
			AlternateGrouping: alt,
		}
		locs = append(locs, loc)
	}
	if len(locs) > 256 {
		return nil, fmt.Errorf("too many locales: %v", len(locs))
	}
	return locs, nil
}

// ident converts a language tag to a Go identifier, e.g. "en-US" to "EnUS".
func ident(tag string) string {
	parts := strings.Split(tag, "-")
	parts[0] = strings.ToUpper(parts[0][:1]) + parts[0][1:]
	return strings.Join(parts, "")
}

func generateGoCode(filename string, locs []locale) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"ident": ident,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, locs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
