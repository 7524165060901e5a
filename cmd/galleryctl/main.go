// galleryctl is a small admin tool for a running gallery server.
// Its only command today is registering a new account from the terminal
// without echoing the password.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	addr := flag.String("a", "http://localhost:3000", "gallery server base URL")
	flag.Parse()

	if err := register(*addr, bufio.NewReader(os.Stdin), os.Stdout, http.DefaultClient); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func register(baseURL string, reader *bufio.Reader, w io.Writer, client *http.Client) error {

	fmt.Fprint(w, "Enter user name\n> ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)

	fmt.Fprint(w, "Enter password: ")
	password, err := readPassword()
	fmt.Fprintln(w)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(w, "Success!")
		return nil
	case http.StatusConflict:
		return fmt.Errorf("user name %q is already taken", username)
	default:
		return fmt.Errorf("unexpected server response: %s", resp.Status)
	}
}
