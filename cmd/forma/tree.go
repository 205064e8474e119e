package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/forma"
	"github.com/tsawler/forma/semantic"
)

var (
	kindStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	refStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// printTree writes a readable view of the IR plus a short detection summary.
func printTree(w io.Writer, result *forma.Result) {
	fmt.Fprintln(w, sectionStyle.Render("Tree"))
	printNode(w, result.Root, 0)

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Detection"))
	det := result.Detection
	fmt.Fprintf(w, "  lists: %d  components: %d  variant sets: %d\n",
		len(det.Lists), len(det.Components), len(det.Variants))
	for _, hint := range det.Components {
		fmt.Fprintf(w, "  %s %s\n",
			detailStyle.Render("component"),
			fmt.Sprintf("%s ×%d", hint.ComponentName, len(hint.InstanceIDs)))
	}
	if det.Modal != nil && det.Modal.HasModalOverlay {
		fmt.Fprintf(w, "  %s %s (content %s)\n",
			detailStyle.Render("modal"), det.Modal.ModalType, det.Modal.ContentID)
		fmt.Fprintf(w, "  generation root: %s\n", result.GenerationRoot.Common().ID)
	}
}

func printNode(w io.Writer, n semantic.IRNode, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	base := n.Common()

	line := indent + kindStyle.Render(n.Kind().String())
	if base.Name != "" {
		line += " " + nameStyle.Render(base.Name)
	}
	if detail := nodeDetail(n); detail != "" {
		line += " " + detailStyle.Render(detail)
	}
	if base.StyleRef != "" {
		line += " " + refStyle.Render("@"+base.StyleRef)
	}
	fmt.Fprintln(w, line)

	for _, child := range semantic.ChildrenOf(n) {
		printNode(w, child, depth+1)
	}
}

func nodeDetail(n semantic.IRNode) string {
	switch v := n.(type) {
	case *semantic.Text:
		if v.Field != "" {
			return fmt.Sprintf("%q (%s)", v.Content, v.Field)
		}
		return fmt.Sprintf("%q", v.Content)
	case *semantic.Button:
		return fmt.Sprintf("%q", v.Label)
	case *semantic.Repeater:
		return fmt.Sprintf("×%d", v.Count)
	case *semantic.Component:
		return v.ComponentName
	case *semantic.Image:
		if v.ImageRef != "" {
			return v.ImageRef
		}
	}
	return ""
}
