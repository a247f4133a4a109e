package cloudflare

// envelope is the standard Cloudflare API v4 response wrapper.
type envelope[T any] struct {
	Success bool       `json:"success"`
	Errors  []apiError `json:"errors"`
	Result  T          `json:"result"`
}

// apiError represents a single Cloudflare API error.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// resultInfo holds pagination info from Cloudflare list responses.
type resultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}

// listEnvelope extends the envelope with pagination info.
type listEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Errors     []apiError `json:"errors"`
	Result     []T        `json:"result"`
	ResultInfo resultInfo `json:"result_info"`
}

// Zone is the subset of the Cloudflare zone object this tool reads.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tunnel is a Cloudflare tunnel summary as returned by the cfd_tunnel
// listing.
type Tunnel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IngressRule is one entry of a tunnel's ingress configuration. Hostname
// is empty for rules that do not route a public hostname (the catch-all).
type IngressRule struct {
	Hostname string `json:"hostname,omitempty"`
	Service  string `json:"service,omitempty"`
}

// TunnelConfiguration is the config body of a cfd_tunnel configurations
// response.
type TunnelConfiguration struct {
	Ingress []IngressRule `json:"ingress"`
}

// tunnelConfigResult wraps TunnelConfiguration the way the API nests it.
type tunnelConfigResult struct {
	TunnelID string              `json:"tunnel_id"`
	Config   TunnelConfiguration `json:"config"`
}

// DNSRecord is the Cloudflare DNS record object.
type DNSRecord struct {
	ID        string `json:"id"`
	ZoneID    string `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Proxiable bool   `json:"proxiable"`
	Proxied   bool   `json:"proxied"`
	TTL       int    `json:"ttl"`
}

// RecordParams is the request body for creating or patching a DNS record.
type RecordParams struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Proxied   bool   `json:"proxied"`
	Proxiable bool   `json:"proxiable"`
	TTL       int    `json:"ttl"`
}
