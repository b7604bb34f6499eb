package volumes_common

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// joinURL safely combines a base URL with a path
func joinURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for trading API requests
type RequestBuilder struct {
	baseURL    string
	httpMethod string
	apiPath    string
	params     map[string]string
	userAgent  string
	headers    map[string]string
}

// NewRequestBuilder creates a request builder for the given trading API endpoint
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: "GET",
		params:     make(map[string]string),
		headers:    make(map[string]string),
		userAgent:  USER_AGENT,
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithValues adds all values from an url.Values set. Multi-valued keys keep
// their first value only, matching what the backend accepts.
func (rb *RequestBuilder) WithValues(values url.Values) *RequestBuilder {
	for key := range values {
		rb.params[key] = values.Get(key)
	}
	return rb
}

// WithPage adds the page parameter for pagination
func (rb *RequestBuilder) WithPage(page int) *RequestBuilder {
	rb.params["page"] = strconv.Itoa(page)
	return rb
}

// WithLimit adds the limit (page size) parameter
func (rb *RequestBuilder) WithLimit(limit int) *RequestBuilder {
	rb.params["limit"] = strconv.Itoa(limit)
	return rb
}

// WithSearch adds the search filter. An empty search means no filter and
// emits no parameter.
func (rb *RequestBuilder) WithSearch(search string) *RequestBuilder {
	if search != "" {
		rb.params["search"] = search
	}
	return rb
}

// WithOrder adds order_by and order_direction together. The backend requires
// both or neither.
func (rb *RequestBuilder) WithOrder(orderBy, orderDirection string) *RequestBuilder {
	if orderBy != "" && orderDirection != "" {
		rb.params["order_by"] = orderBy
		rb.params["order_direction"] = orderDirection
	}
	return rb
}

// WithHeader adds a custom HTTP header
func (rb *RequestBuilder) WithHeader(name, value string) *RequestBuilder {
	rb.headers[name] = value
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := joinURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	finalURL := fullPath
	queryString := query.Encode()
	if queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request object
func (rb *RequestBuilder) Build() (*http.Request, error) {
	return rb.BuildWithURL(rb.BuildURL())
}

func (rb *RequestBuilder) BuildWithURL(finalURL string) (*http.Request, error) {
	req, err := http.NewRequest(rb.httpMethod, finalURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
