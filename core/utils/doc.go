// Package utils provides common helpers shared by the reconciliation engine and
// the tabular adapters. It currently holds the key normalization rules used
// when matching records from independently exported datasets.
package utils
