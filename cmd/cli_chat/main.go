package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"talent-scout/internal/app"
	"talent-scout/internal/config"
	"talent-scout/internal/domain"
	"talent-scout/internal/service"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	deps := app.Build(ctx, cfg, logger)
	defer deps.Close()

	if err := runChat(ctx, os.Stdin, os.Stdout, deps.Intake); err != nil {
		log.Fatal(err)
	}
}

// runChat lee lineas hasta EOF y las reenvia al servicio de intake.
func runChat(ctx context.Context, in io.Reader, out io.Writer, intake *service.IntakeService) error {
	session, err := intake.Start(ctx)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	fmt.Fprintln(out, "==== TalentScout ====")
	fmt.Fprintln(out, "Comandos: /reset, /export, /profile")
	printTranscript(out, session.Transcript)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Tu > ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		text := strings.TrimRight(line, "\r\n")

		if text != "" || readErr == nil {
			if err := handleLine(ctx, out, intake, text); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

func handleLine(ctx context.Context, out io.Writer, intake *service.IntakeService, text string) error {
	switch strings.TrimSpace(text) {
	case "/reset":
		session, err := intake.Reset(ctx)
		if err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		printTranscript(out, session.Transcript)
		return nil
	case "/export":
		bundle, err := intake.Export(ctx)
		if errors.Is(err, service.ErrNothingToExport) {
			fmt.Fprintln(out, "Todavia no hay datos para exportar.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return printJSON(out, bundle)
	case "/profile":
		session, err := intake.Start(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		return printJSON(out, session.Profile)
	}

	_, replies, err := intake.Submit(ctx, text)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	printTranscript(out, replies)
	return nil
}

func printTranscript(out io.Writer, messages []domain.Message) {
	for _, m := range messages {
		if m.Role != domain.RoleAssistant {
			continue
		}
		fmt.Fprintf(out, "TalentScout > %s\n", m.Content)
	}
}

func printJSON(out io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Fprintln(out, string(raw))
	return nil
}
