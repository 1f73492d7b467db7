// internal/domain/logrecord/dto.go
package logrecord

import "hotel-admin-service/internal/domain/pagination"

// ListFilters are the query parameters a log listing accepts. Empty filters
// are omitted from the outbound request rather than forwarded as empty
// strings.
type ListFilters struct {
	pagination.Query
	Agent    string `form:"agent"`
	Result   string `form:"result" binding:"omitempty,oneof=success fail"`
	Platform string `form:"platform"`
}

type ListResponse = pagination.Envelope[Log]
