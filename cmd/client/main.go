// Command client is an interactive test client for the todo service. It lists
// the operations the server exposes, then reads lines of the form
//
//	<operation> [json arguments]
//
// posts them to the dispatch endpoint and prints the text payload. Useful for
// poking at a running server without wiring up a real caller.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/meetingagent/todo-service/api/transport"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:8080", "todo service base URL")
	flag.Parse()

	client := &fasthttp.Client{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	fmt.Println("Todo service test client. Commands: <operation> [json-args], 'ops', 'quit'.")
	if err := printOperations(client, *baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not list operations: %v\n", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			return
		case "ops", "help":
			if err := printOperations(client, *baseURL); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			continue
		}

		name, rawArgs, _ := strings.Cut(line, " ")
		body := strings.TrimSpace(rawArgs)
		if body == "" {
			body = "{}"
		}
		if !json.Valid([]byte(body)) {
			fmt.Fprintln(os.Stderr, "error: arguments must be a JSON object")
			continue
		}

		result, err := call(client, *baseURL, name, []byte(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if result.IsError {
			fmt.Printf("FAILED: %s\n", result.Text())
			continue
		}
		fmt.Println(result.Text())
	}
}

func call(client *fasthttp.Client, baseURL, name string, body []byte) (transport.Result, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(baseURL + "/api/v1/operations/" + name)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := client.Do(req, resp); err != nil {
		return transport.Result{}, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return transport.Result{}, fmt.Errorf("server answered %d: %s", resp.StatusCode(), resp.Body())
	}

	var result transport.Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return transport.Result{}, err
	}
	return result, nil
}

func printOperations(client *fasthttp.Client, baseURL string) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(baseURL + "/api/v1/operations")
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.Do(req, resp); err != nil {
		return err
	}

	var ops []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(resp.Body(), &ops); err != nil {
		return err
	}

	fmt.Println("Available operations:")
	for _, op := range ops {
		fmt.Printf("  %-24s %s\n", op.Name, op.Description)
	}
	return nil
}
