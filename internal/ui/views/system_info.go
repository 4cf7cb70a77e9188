package views

import (
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath         string
	APIBaseURL         string
	BackendReachable   bool
	DefaultCurrency    string
	TransactionsTarget string
	LogPath            string
	AppDataDir         string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	backendStatus := pterm.Green("Reachable")
	if !data.BackendReachable {
		backendStatus = pterm.Red("Unreachable")
	}

	logPath := data.LogPath
	if logPath == "" {
		logPath = "(disabled)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"API Base URL", data.APIBaseURL},
		{"Backend Status", backendStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Transactions Target", "#" + data.TransactionsTarget},
		{"Log File", logPath},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithWriter(w).WithData(tableData).Render()
}
