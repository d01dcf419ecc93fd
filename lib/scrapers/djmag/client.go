package djmag

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"djrank-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://djmag.com"

const fetchTimeout = time.Second * 20

// PageFetcher is the capability the resolver needs to pull pages off the
// site. *Client implements it against the real site, tests substitute
// an in-memory fake.
type PageFetcher interface {
	FetchPage(ctx context.Context, path string) (string, error)
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl when empty
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(fetchTimeout)

	telemetry.InstrumentResty(client, "djrank.scrapers.djmag.http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// FetchPage issues a single GET for a site path and returns the body.
// There are no retries, any transport failure or non-2xx status comes
// back as an error for the caller to absorb.
func (c *Client) FetchPage(ctx context.Context, path string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %s", path, res.Status())
	}
	return res.String(), nil
}
