// Package main provides a CLI tool for generating viewer tokens for the Cobalt API.
// These tokens use the dev signing key and will NOT work in production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	jwttoken "cobalt/internal/jwt_token"
	"cobalt/internal/seeder"
	id "cobalt/pkg/domain"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuer   = "cobalt"
	defaultTokenTTL = time.Hour
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Type      string            `json:"type"`
	ExpiresIn string            `json:"expires_in"`
	Claims    map[string]any    `json:"claims,omitempty"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	viewerCmd := flag.NewFlagSet("viewer", flag.ExitOnError)
	signingCmd := flag.NewFlagSet("signing", flag.ExitOnError)

	viewerAccountID := viewerCmd.String("account-id", "", "Account ID (UUID). Defaults to the seeded demo account for the role.")
	viewerRole := viewerCmd.String("role", string(id.RoleIDPatient), "Role: PATIENT, PROVIDER, MHIC or ADMINISTRATOR")
	viewerInstitution := viewerCmd.String("institution-id", seeder.DemoInstitutionID.String(), "Institution ID")
	viewerTTL := viewerCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	viewerKey := viewerCmd.String("key", devSigningKey, "Signing key")
	viewerJSON := viewerCmd.Bool("json", false, "Output as JSON")

	signingAccountID := signingCmd.String("account-id", seeder.DemoPatientID.String(), "Account ID (UUID)")
	signingTTL := signingCmd.Duration("ttl", 30*time.Minute, "Token time-to-live")
	signingActions := signingCmd.String("actions", "UPGRADE_ACCOUNT,CREATE_SCREENING_SESSION", "Comma-separated actions")
	signingKey := signingCmd.String("key", devSigningKey, "Signing key")
	signingJSON := signingCmd.Bool("json", false, "Output as JSON")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "viewer":
		_ = viewerCmd.Parse(os.Args[2:])
		generateViewerToken(*viewerAccountID, *viewerRole, *viewerInstitution, *viewerTTL, *viewerKey, *viewerJSON)
	case "signing":
		_ = signingCmd.Parse(os.Args[2:])
		generateSigningToken(*signingAccountID, parseActions(*signingActions), *signingTTL, *signingKey, *signingJSON)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokengen - Generate test tokens for the Cobalt API

WARNING: These tokens use the dev signing key and will NOT work in production.
         Only use for local development against the seeded demo data.

Usage:
  tokengen <command> [flags]

Commands:
  viewer    Generate a bearer token identifying a viewer
  signing   Generate a signing token as handed back after SSO sign-in

Examples:
  # Token for the seeded demo patient
  tokengen viewer

  # Token for the seeded MHIC staff account
  tokengen viewer -role MHIC

  # Token for a specific account with a custom TTL
  tokengen viewer -account-id "0b6f2a8e-4a52-4f0e-9d1c-6a1f3e2b7c01" -ttl 8h

  # Output as JSON
  tokengen viewer -json

Use "tokengen <command> -h" for more information about a command.`)
}

func generateViewerToken(accountID, role, institutionID string, ttl time.Duration, key string, jsonOutput bool) {
	roleID := id.RoleID(role)
	if !roleID.IsValid() {
		fail("Invalid role: %s", role)
	}
	accountID = defaultAccountFor(accountID, roleID)
	aid, err := id.ParseAccountID(accountID)
	if err != nil {
		fail("Invalid account-id UUID: %s", accountID)
	}
	iid, err := id.ParseInstitutionID(institutionID)
	if err != nil {
		fail("Invalid institution-id: %s", institutionID)
	}

	svc := jwttoken.NewJWTService(key, defaultIssuer, ttl)
	token, err := svc.Issue(context.Background(), aid, roleID, iid)
	if err != nil {
		fail("Error generating token: %v", err)
	}

	if jsonOutput {
		printJSON(tokenOutput{
			Token:     token,
			Type:      "viewer_token",
			ExpiresIn: ttl.String(),
			Claims: map[string]any{
				"account_id":     aid.String(),
				"role_id":        roleID.String(),
				"institution_id": iid.String(),
			},
			Usage: map[string]string{
				"header": "Authorization: Bearer <token>",
			},
		})
		return
	}
	fmt.Println("Viewer Token (JWT)")
	fmt.Println("==================")
	fmt.Printf("Expires In:   %s\n", ttl)
	fmt.Printf("Account ID:   %s\n", aid)
	fmt.Printf("Role:         %s\n", roleID)
	fmt.Printf("Institution:  %s\n", iid)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/accounts/" + aid.String())
}

func generateSigningToken(accountID string, actions []string, ttl time.Duration, key string, jsonOutput bool) {
	aid, err := id.ParseAccountID(accountID)
	if err != nil {
		fail("Invalid account-id UUID: %s", accountID)
	}

	svc := jwttoken.NewJWTService(key, defaultIssuer, ttl)
	token, err := svc.IssueSigningToken(context.Background(), aid, ttl, nil, actions...)
	if err != nil {
		fail("Error generating token: %v", err)
	}

	if jsonOutput {
		printJSON(tokenOutput{
			Token:     token,
			Type:      "signing_token",
			ExpiresIn: ttl.String(),
			Claims:    map[string]any{"account_id": aid.String(), "actions": actions},
			Usage:     map[string]string{"param": "signingToken=<token>"},
		})
		return
	}
	fmt.Println("Signing Token (JWT)")
	fmt.Println("===================")
	fmt.Printf("Expires In:  %s\n", ttl)
	fmt.Printf("Account ID:  %s\n", aid)
	fmt.Printf("Actions:     %v\n", actions)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
}

// defaultAccountFor picks the seeded demo account matching the role when none is given.
func defaultAccountFor(accountID string, role id.RoleID) string {
	if accountID != "" {
		return accountID
	}
	if role.IsStaff() {
		return seeder.DemoMHICID.String()
	}
	return seeder.DemoPatientID.String()
}

func parseActions(actions string) []string {
	var result []string
	for _, a := range strings.Split(actions, ",") {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail("Error encoding JSON: %v", err)
	}
}
