// Command client is a small command-line client for the socialix API.
//
// Usage:
//
//	client [-a address] [-token token] <command> [args...]
//
// Commands:
//
//	signin <userName> <email> <password>
//	login <email> <password>
//	logout
//	me
//	user <id>
//	follow <id>
//	search <query>
//	users
//	profile [-bio text] [-media path]
//	version
//
// signin and login print the issued session token on stderr so it can be
// passed back with -token or SOCIALIX_TOKEN.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/socialix/internal/adapter"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/models"
)

var errUsage = errors.New("usage: client [-a address] [-token token] <command> [args...]")

func main() {
	address := flag.String("a", envOr("SOCIALIX_ADDRESS", "localhost:5000"), "server address in format [scheme://]host:port")
	token := flag.String("token", os.Getenv("SOCIALIX_TOKEN"), "session token")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("socialix-client")
	if err := logger.SetLevel(envOr("SOCIALIX_LOG_LEVEL", "warn")); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	client, err := adapter.NewHTTPAPIClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	client.SetToken(*token)

	if err = run(context.Background(), client, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.APIClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "signin":
		if len(args) != 3 {
			return errUsage
		}
		user, err := client.SignIn(ctx, models.SignInRequest{UserName: args[0], Email: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, client.Token())
		return printJSON(out, user)
	case "login":
		if len(args) != 2 {
			return errUsage
		}
		msg, err := client.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, client.Token())
		return printJSON(out, models.MessageResponse{Message: msg})
	case "logout":
		return client.Logout(ctx)
	case "me":
		user, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, user)
	case "user":
		if len(args) != 1 {
			return errUsage
		}
		user, err := client.GetUser(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, user)
	case "follow":
		if len(args) != 1 {
			return errUsage
		}
		msg, err := client.ToggleFollow(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, models.MessageResponse{Message: msg})
	case "search":
		if len(args) != 1 {
			return errUsage
		}
		users, err := client.SearchUsers(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, users)
	case "users":
		users, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, users)
	case "profile":
		return updateProfile(ctx, client, args, out)
	case "version":
		v, err := client.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, v)
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func updateProfile(ctx context.Context, client adapter.APIClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	bio := fs.String("bio", "", "new bio, empty clears it")
	mediaPath := fs.String("media", "", "path to the new profile image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var bioPtr *string
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "bio" {
			bioPtr = bio
		}
	})

	var media io.Reader
	if *mediaPath != "" {
		file, err := os.Open(*mediaPath)
		if err != nil {
			return fmt.Errorf("error opening media file: %w", err)
		}
		defer file.Close()
		media = file
	}

	user, err := client.UpdateProfile(ctx, bioPtr, *mediaPath, media)
	if err != nil {
		return err
	}
	return printJSON(out, user)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
