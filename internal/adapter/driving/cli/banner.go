package cli

import (
	"fmt"

	"github.com/diillson/ec2-metrics-reporter/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$  /$$$$$$   /$$$$$$        /$$      /$$             /$$               /$$
        | $$_____/ /$$__  $$ /$$__  $$      | $$$    /$$$            | $$              |__/
        | $$      | $$  \__/|__/  \ $$      | $$$$  /$$$$  /$$$$$$  /$$$$$$    /$$$$$$  /$$  /$$$$$$$  /$$$$$$$
        | $$$$$   | $$        /$$$$$$/      | $$ $$/$$ $$ /$$__  $$|_  $$_/   /$$__  $$| $$ /$$_____/ /$$_____/
        | $$__/   | $$       /$$____/       | $$  $$$| $$| $$$$$$$$  | $$    | $$  \__/| $$| $$      |  $$$$$$
        | $$      | $$    $$| $$            | $$\  $ | $$| $$_____/  | $$ /$$| $$      | $$| $$       \____  $$
        | $$$$$$$$|  $$$$$$/| $$$$$$$$      | $$ \/  | $$|  $$$$$$$  |  $$$$/| $$      | $$|  $$$$$$$ /$$$$$$$/
        |________/ \______/ |________/      |__/     |__/ \_______/   \___/  |__/      |__/ \_______/|_______/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("EC2 Metrics Reporter CLI (v%s)", formattedVersion)))
}
