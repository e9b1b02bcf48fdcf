package finance

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/ali98nadhum/smart-finance-assistant/date"
)

// The live rate comes from the open ER API; the stored record stays the
// source of truth so the app keeps working offline on the last known rate.
const rateEndpoint = "https://open.er-api.com/v6/latest/USD"
const ratePath = "$.rates.IQD"

// FetchRate retrieves the current IQD per USD rate from the public
// exchange-rate API.
func FetchRate(client *http.Client) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, rateEndpoint, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("could not fetch exchange rate: %w", err)
	}
	jval, err := jsonpath.Get(ratePath, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not read %q from rate response: %w", ratePath, err)
	}
	// jsonpath may wrap a single answer in a list.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response %q is not a number: %v", ratePath, jval)
	}
	return decimal.NewFromFloat(val), nil
}

// RefreshExchangeRate fetches the live rate and stores it as the new rate
// record. A nil client uses the daily-cached default.
func (b *Book) RefreshExchangeRate(client *http.Client) (ExchangeRate, error) {
	if client == nil {
		client = daily()
	}
	rate, err := FetchRate(client)
	if err != nil {
		return b.ExchangeRate(), err
	}
	return b.SetExchangeRate(rate), nil
}

// diskCache implements a simple disk cache for HTTP responses. The cache
// key includes the day, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	file := filepath.Join(os.TempDir(), key)
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client whose cache expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
