// Command client is a small command line consumer of the watch party API.
// It covers the whole surface: account creation, login, profile and
// credential updates, room management, and messaging.
//
// Usage:
//
//	client [-server URL] [-key API_KEY] COMMAND [ARG...]
//
// Commands:
//
//	signup
//	login USERNAME PASSWORD
//	profile
//	set-name NEW_NAME
//	set-password NEW_PASSWORD
//	rooms
//	create-room [NAME]
//	rename-room ROOM_ID NEW_NAME
//	messages ROOM_ID
//	post ROOM_ID BODY
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/watchparty/server/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "Base URL of the API server")
	apiKey := flag.String("key", "", "API key issued at signup")
	showBuild := flag.Bool("version", false, "Print build information and exit")
	flag.Parse()

	if *showBuild {
		printBuildInfo()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "missing command; see -h for usage")
		os.Exit(2)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(*serverURL)
	if *apiKey != "" {
		client.SetHeader("Api-Key", *apiKey)
	}

	resp, err := runCommand(client, args[0], args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}

	fmt.Println(resp.String())
	if resp.IsError() {
		os.Exit(1)
	}
}

func runCommand(client *utils.HTTPClient, command string, args []string) (*resty.Response, error) {
	switch command {
	case "signup":
		return client.R().Post("/api/signup")

	case "login":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: login USERNAME PASSWORD")
		}
		return client.R().
			SetBody(map[string]string{"username": args[0], "password": args[1]}).
			Post("/api/login")

	case "profile":
		return client.R().Get("/api/user/profile")

	case "set-name":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: set-name NEW_NAME")
		}
		return client.R().
			SetBody(map[string]string{"new_name": args[0]}).
			Post("/api/user/name")

	case "set-password":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: set-password NEW_PASSWORD")
		}
		return client.R().
			SetBody(map[string]string{"new_password": args[0], "confirm_password": args[0]}).
			Post("/api/user/password")

	case "rooms":
		return client.R().Get("/api/rooms")

	case "create-room":
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return client.R().
			SetBody(map[string]string{"room_name": name}).
			Post("/api/rooms")

	case "rename-room":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: rename-room ROOM_ID NEW_NAME")
		}
		return client.R().
			SetBody(map[string]string{"new_name": args[1]}).
			Post(fmt.Sprintf("/api/rooms/%s/name", args[0]))

	case "messages":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: messages ROOM_ID")
		}
		return client.R().Get(fmt.Sprintf("/api/rooms/%s/messages", args[0]))

	case "post":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: post ROOM_ID BODY")
		}
		return client.R().
			SetBody(map[string]string{"body": args[1]}).
			Post(fmt.Sprintf("/api/rooms/%s/messages", args[0]))

	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
