package core

// Request describes a single HTTP call to the exchange.
// Query params are appended to the path; Form params become a urlencoded body.
type Request struct {
	Method  string
	Path    string
	Query   *Params
	Form    *Params
	Headers map[string]string
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetQueryParams(params *Params) *Request {
	r.Query = params
	return r
}

func (r *Request) SetFormParams(params *Params) *Request {
	r.Form = params
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// URL returns the path with the encoded query string, if any.
func (r *Request) URL() string {
	if q := r.Query.Encode(); q != "" {
		return r.Path + "?" + q
	}
	return r.Path
}
