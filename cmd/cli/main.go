package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/billworks/receipt-render/internal/printer"
	"github.com/billworks/receipt-render/internal/render/escpos"
	"github.com/billworks/receipt-render/internal/render/markup"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Output styles
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	args := os.Args[2:]

	var err error
	switch os.Args[1] {
	case "render":
		err = cmdRender(args)
	case "validate":
		err = cmdValidate(args)
	case "vars":
		err = cmdVars(args)
	case "print":
		err = cmdPrint(args)
	case "printers":
		err = cmdPrinters()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Receipt Render CLI

Usage:
  receipt-cli <command> [arguments]

Commands:
  render <template> [data] [--escpos out.bin]
    Render a template to preview markup on stdout, or to a raw
    printer command stream with --escpos

  validate <template>
    Check a template and report errors and warnings

  vars <template>
    List the placeholder variables a template references

  print <template> [data] --target <addr>
    Render and send to a printer. Targets:
      host[:port]            network printer (default port 9100)
      serial:/dev/ttyUSB0[@baud]
      usb:VID:PID            hex IDs, e.g. usb:04b8:0e28

  printers
    List USB printers visible on the bus

Examples:
  receipt-cli render template.json data.json
  receipt-cli render template.yaml data.yaml --escpos receipt.bin
  receipt-cli validate template.json
  receipt-cli print template.json data.json --target 192.168.1.50
  receipt-cli print template.json data.json --target serial:/dev/ttyUSB0@19200

`)
}

// loadInputs reads the template and optional data file from the
// positional arguments, skipping flags.
func loadInputs(args []string) (*template.Template, data.Context, error) {
	var paths []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "--") {
			i++ // skip the flag value
			continue
		}
		paths = append(paths, args[i])
	}

	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("template file is required")
	}

	tpl, err := template.ParseFile(paths[0])
	if err != nil {
		return nil, nil, err
	}

	ctx := data.Context{}
	if len(paths) > 1 {
		ctx, err = data.ParseFile(paths[1])
		if err != nil {
			return nil, nil, err
		}
	}

	return tpl, ctx, nil
}

func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func cmdRender(args []string) error {
	tpl, ctx, err := loadInputs(args)
	if err != nil {
		return err
	}

	if out := flagValue(args, "--escpos"); out != "" {
		payload := escpos.Render(tpl, ctx)
		if err := os.WriteFile(out, payload, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Println(styleSuccess.Render("✓") + fmt.Sprintf(" wrote %d bytes to %s", len(payload), out))
		return nil
	}

	fmt.Println(markup.Render(tpl, ctx))
	return nil
}

func cmdValidate(args []string) error {
	tpl, _, err := loadInputs(args)
	if err != nil {
		return err
	}

	result := template.Validate(tpl)

	for _, e := range result.Errors {
		fmt.Println(styleError.Render("error") + "   " + e)
	}
	for _, w := range result.Warnings {
		fmt.Println(styleWarning.Render("warning") + " " + w)
	}

	if !result.Valid {
		os.Exit(1)
	}

	if len(result.Warnings) == 0 {
		fmt.Println(styleSuccess.Render("✓ template is valid"))
	} else {
		fmt.Println(styleSuccess.Render("✓ template is valid") +
			styleMuted.Render(fmt.Sprintf(" (%d warning(s))", len(result.Warnings))))
	}
	return nil
}

func cmdVars(args []string) error {
	tpl, _, err := loadInputs(args)
	if err != nil {
		return err
	}

	vars := template.ExtractVariables(tpl)
	if len(vars) == 0 {
		fmt.Println(styleMuted.Render("no variables"))
		return nil
	}

	for _, v := range vars {
		fmt.Println(v)
	}
	return nil
}

func cmdPrint(args []string) error {
	tpl, ctx, err := loadInputs(args)
	if err != nil {
		return err
	}

	target := flagValue(args, "--target")
	if target == "" {
		return fmt.Errorf("--target is required")
	}

	prn, err := parseTarget(target)
	if err != nil {
		return err
	}

	payload := escpos.Render(tpl, ctx)

	pool := printer.NewPool()
	defer pool.DisconnectAll()

	if err := pool.Connect(prn); err != nil {
		return err
	}
	if err := pool.Send(prn.ID, payload); err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render("✓") + fmt.Sprintf(" sent %d bytes to %s", len(payload), prn.Description))
	return nil
}

// parseTarget turns a CLI target string into a printer definition.
func parseTarget(target string) (*printer.Printer, error) {
	switch {
	case strings.HasPrefix(target, "serial:"):
		device := strings.TrimPrefix(target, "serial:")
		baud := 9600
		if at := strings.LastIndex(device, "@"); at >= 0 {
			b, err := strconv.Atoi(device[at+1:])
			if err != nil {
				return nil, fmt.Errorf("invalid baud rate in target: %s", target)
			}
			baud = b
			device = device[:at]
		}
		return &printer.Printer{
			ID:          "cli-serial",
			Type:        "serial",
			Device:      device,
			Baud:        baud,
			Description: fmt.Sprintf("Serial: %s", device),
		}, nil

	case strings.HasPrefix(target, "usb:"):
		parts := strings.Split(strings.TrimPrefix(target, "usb:"), ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("usb target must be usb:VID:PID, got: %s", target)
		}
		vid, err := strconv.ParseUint(parts[0], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid vendor ID: %s", parts[0])
		}
		pid, err := strconv.ParseUint(parts[1], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID: %s", parts[1])
		}
		return &printer.Printer{
			ID:          "cli-usb",
			Type:        "usb",
			VID:         uint16(vid),
			PID:         uint16(pid),
			Description: fmt.Sprintf("USB: %04x:%04x", vid, pid),
		}, nil

	default:
		host := target
		port := printer.DefaultNetworkPort
		if colon := strings.LastIndex(target, ":"); colon >= 0 {
			p, err := strconv.Atoi(target[colon+1:])
			if err != nil {
				return nil, fmt.Errorf("invalid port in target: %s", target)
			}
			port = p
			host = target[:colon]
		}
		return &printer.Printer{
			ID:          "cli-network",
			Type:        "network",
			Host:        host,
			Port:        port,
			Description: fmt.Sprintf("Network: %s:%d", host, port),
		}, nil
	}
}

func cmdPrinters() error {
	printers, err := printer.DetectUSB()
	if err != nil {
		return err
	}

	if len(printers) == 0 {
		fmt.Println(styleMuted.Render("no USB printers found"))
		return nil
	}

	for _, p := range printers {
		fmt.Printf("%s  %s\n", p.ID, p.Description)
	}
	return nil
}
