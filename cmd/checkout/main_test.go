package main

import (
	"bytes"
	"testing"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application/services"
	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPlans(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, printPlans(&buf, domain.DefaultPlans()))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "3m")
	assert.Contains(t, out, "1260.00")
	assert.Contains(t, out, "599.99")
}

func TestPrintQuote(t *testing.T) {
	color.NoColor = true

	catalog, err := domain.NewCatalog(domain.DefaultPlans())
	require.NoError(t, err)
	quote, err := services.NewQuoteService(catalog, decimal.RequireFromString("0.015")).Quote("3m")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printQuote(&buf, quote, "0.015"))

	out := buf.String()
	assert.Contains(t, out, "monthly rate 0.015")
	assert.Contains(t, out, "432.66")
	assert.Contains(t, out, "1297.98")
	assert.Contains(t, out, "129798")
	assert.Contains(t, out, "12x")
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "plans", "quote"}, names)

	root.SetArgs([]string{"quote"})
	root.SetOut(&bytes.Buffer{})
	assert.Error(t, root.Execute(), "quote needs a plan id")
}
