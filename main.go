package main

import (
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/cmd"
)

func init() {
	// Stored amounts are plain JSON numbers, as in existing data files.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	cmd.Execute()
}
