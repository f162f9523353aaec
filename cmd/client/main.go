package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: go-notes-client <command> [flags]

commands:
  version                                   print client and server versions
  register -email E -username U -password P [-fullname F]
  login    -username U -password P          prints the access token
  me                                        show the logged in user
  logout   -id USER_ID                      delete the account
  add      -title T -content C [-tags a,b]
  edit     -id NOTE_ID [-title T] [-content C] [-tags a,b]
  list
  search   -query Q
  pin      -id NOTE_ID [-pinned=false]
  delete   -id NOTE_ID

The server address and the access token are read from ADAPTER_ADDRESS and
ADAPTER_ACCESS_TOKEN (or a .env file).
`

func main() {
	log := logger.NewClientLogger("go-notes-client")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPNotesAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating notes api")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = run(ctx, api, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.NotesAPI, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)

	var (
		email    = fs.String("email", "", "account email")
		username = fs.String("username", "", "account username")
		password = fs.String("password", "", "account password")
		fullName = fs.String("fullname", "", "display name")
		id       = fs.String("id", "", "user or note id")
		title    = fs.String("title", "", "note title")
		content  = fs.String("content", "", "note content")
		tags     = fs.String("tags", "", "comma separated note tags")
		query    = fs.String("query", "", "search query")
		pinned   = fs.Bool("pinned", true, "pin state")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch command {
	case "version":
		serverVersion, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		fmt.Printf("Server version: %s\n", serverVersion)
		return nil

	case "register":
		user, err := api.Register(ctx, models.RegisterRequest{FullName: *fullName, Email: *email, Username: *username, Password: *password})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (%s)\nADAPTER_ACCESS_TOKEN=%s\n", user.Username, user.ID, api.Token())
		return nil

	case "login":
		resp, err := api.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s\nADAPTER_ACCESS_TOKEN=%s\n", resp.Username, resp.AccessToken)
		return nil

	case "me":
		user, err := api.GetUser(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "logout":
		if err := api.Logout(ctx, *id); err != nil {
			return err
		}
		fmt.Println("account deleted")
		return nil

	case "add":
		note, err := api.AddNote(ctx, models.AddNoteRequest{Title: *title, Content: *content, Tags: splitTags(*tags)})
		if err != nil {
			return err
		}
		return printJSON(note)

	case "edit":
		note, err := api.EditNote(ctx, *id, models.EditNoteRequest{Title: *title, Content: *content, Tags: splitTags(*tags)})
		if err != nil {
			return err
		}
		return printJSON(note)

	case "list":
		notes, err := api.GetAllNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)

	case "search":
		notes, err := api.SearchNotes(ctx, *query)
		if err != nil {
			return err
		}
		return printJSON(notes)

	case "pin":
		note, err := api.PinNote(ctx, *id, *pinned)
		if err != nil {
			return err
		}
		return printJSON(note)

	case "delete":
		if err := api.DeleteNote(ctx, *id); err != nil {
			return err
		}
		fmt.Println("note deleted")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func splitTags(raw string) models.Tags {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tags models.Tags
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
