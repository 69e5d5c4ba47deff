/*
Demo client for the hello and document services.

	$ client -name Ada
	$ client -json '{"a": 1}' -uri /documents/a.json -collections x,y
	$ client -interactive
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/grpc/clients"
	"go_doc_rpc/platform/grpc/rpcpb"
)

type example struct {
	title string
	req   *rpcpb.DocumentRequest
}

var examples = []example{
	{
		title: "Simple JSON document",
		req: &rpcpb.DocumentRequest{
			JsonData:    `{"title": "Sample Document", "author": "John Doe", "created": "2024-01-01", "content": "This is a sample document."}`,
			Collections: []string{"examples", "samples"},
		},
	},
	{
		title: "Complex nested JSON",
		req: &rpcpb.DocumentRequest{
			JsonData: `{"customer": {"id": 12345, "name": "Acme Corporation", "address": {"city": "Anytown", "state": "CA"},` +
				` "contacts": [{"type": "email", "value": "contact@acme.com"}]},` +
				` "orders": [{"id": 1001, "total": 299.99, "status": "shipped"}, {"id": 1002, "total": 149.50, "status": "pending"}]}`,
			DocumentUri: "/customers/12345.json",
			Collections: []string{"customers", "active"},
			Metadata:    map[string]string{"source": "crm_system", "priority": "high"},
		},
	},
	{
		title: "JSON array document",
		req: &rpcpb.DocumentRequest{
			JsonData:    `[{"name": "Alice", "age": 30}, {"name": "Bob", "age": 25}, {"name": "Charlie", "age": 35}]`,
			Collections: []string{"employees", "directory"},
			Metadata:    map[string]string{"type": "employee_list"},
		},
	},
	{
		title: "Invalid JSON (error case)",
		req:   &rpcpb.DocumentRequest{JsonData: `{"name": "Test", "invalid": }`},
	},
}

func main() {
	var helloAddr, docAddr, name, jsonData, uri, collections string
	var timeout time.Duration
	var interactive bool
	flag.StringVar(&helloAddr, "hello-addr", "localhost:50051", "address of the hello service")
	flag.StringVar(&docAddr, "doc-addr", "localhost:50052", "address of the document service")
	flag.StringVar(&name, "name", "World", "name to greet")
	flag.StringVar(&jsonData, "json", "", "insert this JSON document instead of running the examples")
	flag.StringVar(&uri, "uri", "", "document uri for -json")
	flag.StringVar(&collections, "collections", "", "comma separated collections for -json")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "per call timeout")
	flag.BoolVar(&interactive, "interactive", false, "prompt for documents on stdin after the examples")
	flag.Parse()

	c, err := clients.NewGrpcClients(helloAddr, docAddr)
	if err != nil {
		logging.Logger.Error("fail NewGrpcClients", "error", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	hello, err := c.HelloClient.SayHello(ctx, &rpcpb.HelloRequest{Name: name})
	cancel()
	if err != nil {
		logging.Logger.Error("fail SayHello", "error", err)
	} else {
		fmt.Println("Greeter client received:", hello.GetMessage())
	}

	if jsonData != "" {
		req := &rpcpb.DocumentRequest{JsonData: jsonData, DocumentUri: uri, Collections: parseCollections(collections)}
		insert(c, timeout, "Custom document", req)
		return
	}
	for _, ex := range examples {
		insert(c, timeout, ex.title, ex.req)
	}
	if interactive {
		runInteractive(os.Stdin, os.Stdout, func(req *rpcpb.DocumentRequest) {
			insert(c, timeout, "Interactive document", req)
		})
	}
}

// parseCollections splits a comma separated label list, dropping blank labels.
func parseCollections(s string) []string {
	var out []string
	for _, label := range strings.Split(s, ",") {
		if label = strings.TrimSpace(label); label != "" {
			out = append(out, label)
		}
	}
	return out
}

var interactiveExample = &rpcpb.DocumentRequest{
	JsonData:    `{"test": true, "timestamp": "2024-01-01T12:00:00Z", "message": "This is a test document from interactive mode"}`,
	Collections: []string{"interactive", "test"},
}

// runInteractive reads menu choices from in until quit or EOF and hands each document to send.
func runInteractive(in io.Reader, out io.Writer, send func(*rpcpb.DocumentRequest)) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), rpcpb.MaxMessageSize)
	prompt := func(p string) (string, bool) {
		fmt.Fprint(out, p)
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	fmt.Fprintln(out, "\nInteractive mode")
	for {
		fmt.Fprintln(out, "\n1. Enter JSON manually\n2. Use predefined example\n3. Quit")
		choice, ok := prompt("Select option (1-3): ")
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "3", "quit", "q":
			return
		case "1":
			fmt.Fprintln(out, "Enter JSON data (empty line to submit):")
			var lines []string
			for {
				line, ok := prompt("")
				if !ok {
					return
				}
				if line == "" && len(lines) > 0 {
					break
				}
				lines = append(lines, line)
			}
			uri, ok := prompt("Document URI (optional): ")
			if !ok {
				return
			}
			labels, ok := prompt("Collections (comma-separated, optional): ")
			if !ok {
				return
			}
			send(&rpcpb.DocumentRequest{
				JsonData:    strings.Join(lines, "\n"),
				DocumentUri: strings.TrimSpace(uri),
				Collections: parseCollections(labels),
			})
		case "2":
			send(interactiveExample)
		default:
			fmt.Fprintln(out, "Invalid choice. Please select 1, 2, or 3.")
		}
	}
}

func insert(c *clients.GrpcClients, timeout time.Duration, title string, req *rpcpb.DocumentRequest) {
	fmt.Println("\n" + title)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	resp, err := c.DocumentClient.InsertDocument(ctx, req)
	if err != nil {
		logging.Logger.Error("fail InsertDocument", "error", err)
		return
	}
	if resp.Succeeded() {
		fmt.Printf("Success: %s\nDocument URI: %s\n", resp.StatusMessage, resp.GetDocumentUri())
	} else {
		fmt.Printf("Error %d: %s\n", resp.GetStatusCode(), resp.StatusMessage)
	}
	if resp.Details != "" {
		fmt.Println("Details:", resp.Details)
	}
}
