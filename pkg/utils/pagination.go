package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page - параметры постраничной выборки из query (?page=&limit=).
type Page struct {
	Limit  uint64
	Offset uint64
	Number uint64
}

func ParsePage(values url.Values) Page {
	p := Page{Limit: DefaultLimit, Number: 1}

	if l, err := strconv.ParseUint(values.Get("limit"), 10, 64); err == nil && l > 0 {
		p.Limit = l
		if l > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	if n, err := strconv.ParseUint(values.Get("page"), 10, 64); err == nil && n > 0 {
		p.Number = n
	}

	p.Offset = (p.Number - 1) * p.Limit
	return p
}
