// Package ui renders the editor surfaces to the terminal: status
// messages, the canvas markup, the hierarchy outline and the properties
// form.
package ui

import (
	"fmt"
	"io"
	"strings"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) PrintColored(message string, color Color) {
	fmt.Fprint(u.writer, u.colorize(message, color))
}

func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

func (u *UI) Error(message string) {
	u.Printf(fmt.Sprintf("%s!%s %s\n", ColorRed, ColorLightOrange, message))
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	u.Printf(fmt.Sprintf("%s?%s %s\n", ColorLightRed, ColorLightYellow, message))
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// GetPromptString builds the readline prompt from the open project name
// and the current selection.
func (u *UI) GetPromptString(project, selected string) string {
	var promptBuilder strings.Builder
	if project != "" {
		promptBuilder.WriteString(u.colorize(project, ColorLightBlue))
		if selected != "" {
			promptBuilder.WriteString(u.colorize(" @ ", ColorWhite))
			promptBuilder.WriteString(u.colorize(selected, ColorLightPurple))
		}
		promptBuilder.WriteString(" ")
	}
	promptBuilder.WriteString(u.colorize("> ", ColorGreen))
	return promptBuilder.String()
}
