// Package report renders duplicate scan results as plain-text reports.
package report
