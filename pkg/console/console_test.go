package console

import (
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	pterm.DisableColor()
	color.NoColor = true
	t.Cleanup(pterm.EnableColor)

	table := NewConsole().CreateTable()
	table.AddColumn("account id")
	table.AddColumn("spend")
	table.AddRow("111111111111", "1,234.50")
	table.AddRow(222222222222, "0.00")

	out := table.Render()
	assert.Contains(t, out, "account id")
	assert.Contains(t, out, "111111111111")
	assert.Contains(t, out, "222222222222")
	assert.Contains(t, out, "1,234.50")
	assert.Contains(t, out, "2 account(s)")
}

func TestTableRender_Empty(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	table := NewConsole().CreateTable()
	table.AddColumn("account id")

	assert.Contains(t, table.Render(), "No active accounts to report")
}
