package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Result records one HTTP outcome for the summary.
type Result struct {
	Status int
	Body   string
	Err    error
}

// Hammers the contract-create endpoint with concurrent requests for
// the same product to confirm the stock ledger never oversells: with
// stock=N, exactly N creates may succeed.
func main() {
	baseURL := flag.String("base", "http://localhost:8080", "server base url")
	token := flag.String("token", "", "bearer token of an existing admin")
	productID := flag.String("product", "", "product id to sell")
	clientPhone := flag.String("phone", "+998901234567", "client phone number")
	requests := flag.Int("n", 200, "total requests")
	concurrency := flag.Int("c", 50, "max concurrency")
	flag.Parse()

	if *token == "" || *productID == "" {
		panic("both -token and -product are required")
	}

	client := &http.Client{Timeout: 5 * time.Second}

	fmt.Printf("start oversell test: product=%s requests=%d concurrency=%d\n",
		*productID, *requests, *concurrency)
	results := runCreate(client, *baseURL, *token, *productID, *clientPhone, *requests, *concurrency)
	printSummary("oversell", results)

	stock, err := getStock(client, *baseURL, *productID)
	if err != nil {
		fmt.Println("stock check err:", err)
	} else {
		fmt.Println("final stock:", stock)
	}
}

func runCreate(client *http.Client, baseURL, token, productID, phone string, total, concurrency int) []Result {
	type Req struct {
		Products []string `json:"product"`
		Client   string   `json:"client"`
		Paytype  string   `json:"paytype"`
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	results := make([]Result, total)

	for i := 0; i < total; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			req := Req{Products: []string{productID}, Client: phone, Paytype: "cash"}
			results[idx] = createOnce(client, baseURL, token, req)
		}(i)
	}

	wg.Wait()
	return results
}

func createOnce(client *http.Client, baseURL, token string, req any) Result {
	b, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, baseURL+"/api/contracts", bytes.NewReader(b))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(httpReq)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return Result{Status: resp.StatusCode, Body: string(body)}
}

// printSummary aggregates the status-code distribution.
func printSummary(name string, results []Result) {
	count := map[int]int{}
	errCount := 0
	for _, r := range results {
		if r.Err != nil {
			errCount++
			continue
		}
		count[r.Status]++
	}
	fmt.Printf("[%s] http status summary:\n", name)
	for _, code := range []int{200, 201, 400, 401, 404, 429, 500} {
		if count[code] > 0 {
			fmt.Printf("  %d -> %d\n", code, count[code])
		}
	}
	if errCount > 0 {
		fmt.Printf("  errors -> %d\n", errCount)
	}
}

// getStock reads the cached available count after the run; anything
// below zero would mean the ledger oversold.
func getStock(client *http.Client, baseURL, productID string) (int64, error) {
	resp, err := client.Get(fmt.Sprintf("%s/api/stock/%s", baseURL, productID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("status=%d body=%s", resp.StatusCode, string(b))
	}

	var out struct {
		Code int `json:"code"`
		Data struct {
			Stock int64 `json:"stock"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return 0, err
	}
	return out.Data.Stock, nil
}
