package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		MarginBottom(1)

	taglineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6")).
		Italic(true).
		MarginBottom(1)

	promptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	assistantStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B"))

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#EF4444"))
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner(mockMode bool) {
	banner := `
 ███████╗██╗███╗   ██╗ █████╗  ██████╗ ███████╗███╗   ██╗████████╗
 ██╔════╝██║████╗  ██║██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝
 █████╗  ██║██╔██╗ ██║███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║
 ██╔══╝  ██║██║╚██╗██║██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║
 ██║     ██║██║ ╚████║██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║
 ╚═╝     ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝   ╚═╝
`
	fmt.Print(bannerStyle.Render(banner))
	fmt.Println()
	fmt.Println(taglineStyle.Render("Your personal finance assistant: quotes, portfolios, news and FX"))
	if mockMode {
		fmt.Println(infoStyle.Render("Running with simulated market data. No API key required."))
	}
	fmt.Println()
	fmt.Println("Type your question, or one of: help, history, clear, exit")
	fmt.Println()
}

// DisplayReply prints an assistant reply.
func DisplayReply(reply string) {
	fmt.Println(assistantStyle.Render("Assistant:"), reply)
}

// DisplayError shows an error message
func DisplayError(err error) {
	fmt.Println(errorStyle.Render("Error: " + err.Error()))
}

// DisplayInfo shows an info message
func DisplayInfo(message string) {
	fmt.Println(infoStyle.Render(message))
}

// ClearScreen clears the terminal screen
func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}
