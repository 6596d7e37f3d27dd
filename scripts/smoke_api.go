package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/fatih/color"
)

// Walks the JSON API of a running server with one cookie-backed session.
//
//	SMOKE_BASE_URL=http://localhost:3000/api OPENAI_API_KEY=sk-... go run ./scripts

var client *http.Client

func baseURL() string {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000/api"
}

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

// Request helper
func sendRequest(method, path, contentType string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func sendJSON(method, path string, payload interface{}) (*http.Response, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return sendRequest(method, path, "application/json", bytes.NewReader(raw))
}

func step(title string, resp *http.Response, body []byte, err error) {
	color.Yellow("\n%s", title)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Magenta("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(body)
}

func main() {
	jar, _ := cookiejar.New(nil)
	client = &http.Client{Jar: jar, Timeout: 3 * time.Minute}

	color.Cyan("🚀 Housing Empire AI API smoke test against %s\n", baseURL())

	resp, body, err := sendRequest(http.MethodGet, "/pages", "", nil)
	step("1. List pages", resp, body, err)

	resp, body, err = sendRequest(http.MethodGet, "/kpi", "", nil)
	step("2. KPI snapshot", resp, body, err)

	leads := "Name,Phone,Address\nJane Doe,555-0100,1 Main St\nBob Roe,555-0101,2 Oak Ave\n"
	resp, body, err = sendRequest(http.MethodPost, "/leads?file_name=deal_flow.csv", "text/csv", bytes.NewBufferString(leads))
	step("3. Upload leads", resp, body, err)

	resp, body, err = sendJSON(http.MethodPost, "/generate/analyze", map[string]string{"address": "1 Main St"})
	step("4. Generate without a key (expect 400)", resp, body, err)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		color.Cyan("\nOPENAI_API_KEY not set, skipping live generation")
		return
	}

	resp, body, err = sendJSON(http.MethodPut, "/session/credential", map[string]string{"api_key": apiKey})
	step("5. Store API key", resp, body, err)

	resp, body, err = sendJSON(http.MethodPost, "/generate/loi", map[string]interface{}{
		"structure":   "SubTo",
		"seller_name": "Jane Doe",
		"price":       100000,
	})
	step("6. Generate LOI", resp, body, err)

	color.Cyan("\n✅ Done")
}
