package tui

import "github.com/charmbracelet/lipgloss"

var (
	// General document container (margins, padding)
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // purple
			Padding(1, 0)
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	// List screens (results, curated list)
	listHeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")). // gray
			MarginBottom(1).
			PaddingBottom(1)
	listItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	selectedListItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("62")). // purple
				SetString("> ")
	itemMetaStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("240"))
	curatedMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // orange

	// Status and error messages
	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		}) // green
	warningMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // orange
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")) // red

	// URLs (login screen, selected item)
	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // blue
			Underline(true)

	filterBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)
)
