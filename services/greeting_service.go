package services

import (
	"fmt"
	"strings"

	"go_doc_rpc/pkg/logging"
)

const defaultGreetingSubject = "World"

type GreetingService struct{}

func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

// Greet builds the greeting for name. A blank name greets the default subject.
func (s *GreetingService) Greet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultGreetingSubject
	}
	logging.Logger.Info("received greeting request", "name", name)
	return fmt.Sprintf("Hello, %s! Welcome to gRPC with Protocol Buffers!", name)
}
