// Package tabular reads and writes the header-row tables exchanged with the
// point-of-sale and e-commerce exports.
//
// Inputs are CSV files with one header row. Column lookup is case-insensitive
// and ignores surrounding whitespace and a UTF-8 byte order mark. Outputs are
// written as CSV (CRLF line endings, matching the legacy reports) or as XLSX
// workbooks through excelize.
package tabular
