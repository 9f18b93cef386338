package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/interview/v1"

// Hardcoded IDs from a seeded dev database.
const (
	subjectID  = "a2b94f4c-b674-433b-90be-65a91a37e7a3"
	positionID = "7f1c2e9a-5d3b-4c8f-9e21-0b6a4d8c7e55"
)

type apiEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type startResponse struct {
	SessionId string `json:"sessionId"`
	Question  string `json:"question"`
}

type advanceResponse struct {
	HasNext    bool   `json:"hasNext"`
	Question   string `json:"question"`
	TurnNumber int    `json:"turnNumber"`
	FinalScore int    `json:"finalScore"`
	Feedback   string `json:"feedback"`
}

// Scripted answers, cycled until the interview completes.
var answers = []string{
	"I spent two years building event driven services in Go, mostly around order processing. The hardest part was exactly-once semantics over a flaky broker, which we solved with idempotency keys on the consumer side.",
	"We sharded the Postgres database by tenant and added a read replica per region. Migrations were coordinated with an expand-contract pattern to avoid downtime.",
	"For observability we relied on structured logs and distributed tracing. Latency regressions usually showed up in the p99 first, so alerts keyed off that.",
}

func main() {
	interviewer := color.New(color.FgCyan, color.Bold)
	candidate := color.New(color.FgGreen)
	meta := color.New(color.FgYellow)

	fmt.Println("=== Interview Simulation Client ===")

	start, err := startSession()
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	meta.Printf("Session: %s\n\n", start.SessionId)
	interviewer.Printf("INTERVIEWER: %s\n", start.Question)

	for turn := 0; turn < 30; turn++ {
		answer := answers[turn%len(answers)]
		candidate.Printf("CANDIDATE: %s\n", answer)

		startedAt := time.Now()
		adv, err := advance(start.SessionId, answer)
		elapsed := time.Since(startedAt)
		if err != nil {
			log.Fatalf("Advance failed: %v", err)
		}

		if !adv.HasNext {
			meta.Printf("\nInterview complete (%v). Score: %d\n", elapsed, adv.FinalScore)
			fmt.Println(adv.Feedback)
			return
		}

		meta.Printf("(turn %d, %v)\n", adv.TurnNumber, elapsed)
		interviewer.Printf("INTERVIEWER: %s\n", adv.Question)
	}

	log.Fatal("Interview did not complete within 30 turns")
}

func startSession() (*startResponse, error) {
	payload, _ := json.Marshal(map[string]string{
		"subjectId":  subjectID,
		"positionId": positionID,
	})

	var out startResponse
	if err := post("/session", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func advance(sessionID, answer string) (*advanceResponse, error) {
	payload, _ := json.Marshal(map[string]string{
		"sessionId":  sessionID,
		"answerText": answer,
	})

	var out advanceResponse
	if err := post("/session/advance", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func post(path string, payload []byte, out interface{}) error {
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}
