// Command probe is a developer tool: it mints a token, joins a topic over
// the REST API, opens the websocket, and prints every event it receives.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
)

type tokenResponse struct {
	IdentityID string `json:"identity_id"`
	Token      string `json:"token"`
}

type topicRow struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

func main() {
	server := flag.String("server", "http://localhost:8080", "server base URL")
	name := flag.String("name", "probe", "display name for the minted identity")
	topic := flag.String("topic", "", "topic to join; empty lists topics and exits")
	flag.Parse()

	tok, err := mintToken(*server, *name)
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}
	color.Green.Printf("identity %s\n", tok.IdentityID)

	if *topic == "" {
		if err := printTopics(*server, tok.Token); err != nil {
			log.Fatalf("Failed to list topics: %v", err)
		}
		return
	}

	joined, err := join(*server, tok.Token, *topic)
	if err != nil {
		log.Fatalf("Join failed: %v", err)
	}
	fmt.Printf("join result: %s\n", joined)

	wsURL := "ws" + (*server)[len("http"):] + "/ws?token=" + tok.Token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("Websocket dial failed: %v", err)
	}
	defer conn.Close()
	color.Green.Println("websocket connected, waiting for events (Ctrl-C to quit)")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			var raw map[string]any
			if err := conn.ReadJSON(&raw); err != nil {
				log.Printf("read error: %v", err)
				return
			}
			pretty, _ := json.Marshal(raw)
			kind, _ := raw["kind"].(string)
			color.Cyan.Printf("[%s] ", kind)
			fmt.Println(string(pretty))
		}
	}()

	select {
	case <-done:
	case <-interrupt:
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}

func mintToken(server, name string) (tokenResponse, error) {
	payload, _ := json.Marshal(map[string]string{"display_name": name})
	resp, err := http.Post(server+"/auth/token", "application/json", bytes.NewReader(payload))
	if err != nil {
		return tokenResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return tokenResponse{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var tok tokenResponse
	err = json.NewDecoder(resp.Body).Decode(&tok)
	return tok, err
}

func join(server, token, topic string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"topic_id": topic})
	req, err := http.NewRequest(http.MethodPost, server+"/api/match/join", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var body bytes.Buffer
	_, _ = body.ReadFrom(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body.String())
	}
	return body.String(), nil
}

func printTopics(server, token string) error {
	req, err := http.NewRequest(http.MethodGet, server+"/api/topics", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var topics []topicRow
	if err := json.NewDecoder(resp.Body).Decode(&topics); err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Active"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, t := range topics {
		table.Append([]string{t.ID, t.Title, fmt.Sprintf("%v", t.Active)})
	}
	table.Render()
	return nil
}
