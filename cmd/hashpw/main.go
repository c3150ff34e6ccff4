// Command hashpw prints the environment lines for the admin credentials.
//
//	go run ./cmd/hashpw 'correct horse battery staple'
package main

import (
	"fmt"
	"os"

	"portfolio/internal/infra/auth"
)

const (
	hashCost     = 10
	defaultAdmin = "admin"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "Please provide a password to hash")
		fmt.Fprintln(os.Stderr, "Usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := auth.NewBcryptHasherWithCost(hashCost).Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Copy this to your .env.local file:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%q\n", hash)
	fmt.Printf("ADMIN_USER=%q\n", defaultAdmin)
}
