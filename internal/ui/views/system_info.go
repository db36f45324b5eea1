package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath        string
	DBPath            string
	DBExists          bool // true = Found, false = Not Found
	DefaultCurrencies []string
	FeeRate           string
	AppDataDir        string
	Accounts          int
	Journals          int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currencies", strings.Join(data.DefaultCurrencies, ", ")},
		{"Exchange Fee Rate", data.FeeRate},
		{"AppData Directory", data.AppDataDir},
		{"Accounts", fmt.Sprint(data.Accounts)},
		{"Journals", fmt.Sprint(data.Journals)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
