package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

/**
 * Convert a struct to an ordered map keyed by its json tags
 * @param {interface{}} v - struct value
 * @returns {*orderedmap.OrderedMap} fields in declaration order
 * @returns {error} marshal error
 */
func StructToOrderedMap(v interface{}) (*orderedmap.OrderedMap, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	om := orderedmap.New()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, err
	}
	return om, nil
}

/**
 * Render rows as a table
 * @param {io.Writer} w - destination
 * @param {[]*orderedmap.OrderedMap} dataList - rows, the first row decides the columns
 * @description
 * - Column titles are the upper-cased keys
 * - Prints "No data" for an empty list
 */
func FprintFormat(w io.Writer, dataList []*orderedmap.OrderedMap) {
	if len(dataList) == 0 {
		fmt.Fprintln(w, "No data")
		return
	}
	keys := dataList[0].Keys()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(keys))
	for _, k := range keys {
		header = append(header, strings.ToUpper(k))
	}
	t.AppendHeader(header)

	for _, rec := range dataList {
		row := make(table.Row, 0, len(keys))
		for _, k := range keys {
			v, _ := rec.Get(k)
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func PrintFormat(dataList []*orderedmap.OrderedMap) {
	FprintFormat(os.Stdout, dataList)
}

func FprintYaml(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func FprintJson(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
