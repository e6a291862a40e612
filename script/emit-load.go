package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// EmitPayload is the body of POST /logs/:category
type EmitPayload struct {
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// EmitReply is the viewer's answer to one emit
type EmitReply struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Accepted bool   `json:"accepted"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Accepted     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	GatedRequests      int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	CategoryStats      map[string]int
	SeverityStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of log call the generator sends
type Scenario struct {
	Severity string
	Message  string
	Tags     []string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 500, "Total number of log calls to send")
	categoriesStr := flag.String("categories", "default,network,db", "Comma-separated logger keys to spread calls across")
	baseURL := flag.String("url", "http://localhost:8787", "Base URL of the console viewer")
	delayMs := flag.Int("delay", 10, "Delay between requests in milliseconds")
	flag.Parse()

	var categories []string
	for _, c := range strings.Split(*categoriesStr, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		categories = []string{"default"}
	}

	scenarios := []Scenario{
		{"debug", "Cache lookup", []string{"General"}},
		{"info", "Request served", []string{"HTTP"}},
		{"notice", "Config reloaded", nil},
		{"warning", "Upstream slow", []string{"Network"}},
		{"error", "Request Timeout", []string{"Network", "HTTP"}},
		{"fault", "Unrecoverable state reached", nil},
	}

	fmt.Printf("Sending %d log calls across categories %v\n", *totalRequests, categories)
	fmt.Printf("Concurrency: %d goroutines, delay %d ms\n", *concurrency, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		CategoryStats: make(map[string]int),
		SeverityStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, categories, scenarios, jobs, results, stats)
		}(i)
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case !result.Success:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			case !result.Accepted:
				stats.SuccessfulRequests++
				stats.GatedRequests++
			default:
				stats.SuccessfulRequests++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(id int, baseURL string, delayMs int, categories []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		category := categories[rand.Intn(len(categories))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.CategoryStats[category]++
		stats.SeverityStats[scenario.Severity]++
		stats.Lock.Unlock()

		payload := EmitPayload{
			Severity: scenario.Severity,
			Message:  scenario.Message,
			Tags:     scenario.Tags,
			Metadata: map[string]any{"worker": id, "job": jobID},
		}
		body, err := json.Marshal(payload)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/logs/%s", baseURL, category), bytes.NewReader(body))
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", fmt.Sprintf("load-%d-%d", id, jobID))

		start := time.Now()
		resp, err := client.Do(req)
		result := TestResult{ResponseTime: time.Since(start)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Success = resp.StatusCode == http.StatusAccepted
		if result.Success {
			var reply EmitReply
			if err := json.NewDecoder(resp.Body).Decode(&reply); err == nil {
				result.Accepted = reply.Accepted
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		resp.Body.Close()

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= EMIT LOAD RESULTS =================")
	fmt.Printf("Total calls:      %d\n", stats.TotalRequests)
	fmt.Printf("Delivered:        %d\n", stats.SuccessfulRequests-stats.GatedRequests)
	fmt.Printf("Gated:            %d\n", stats.GatedRequests)
	fmt.Printf("Failed:           %d\n", stats.FailedRequests)
	fmt.Printf("Total time:       %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Calls per second: %.2f\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- DISTRIBUTION -----------------")
	for category, count := range stats.CategoryStats {
		fmt.Printf("category %-12s %d\n", category, count)
	}
	for severity, count := range stats.SeverityStats {
		fmt.Printf("severity %-12s %d\n", severity, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
