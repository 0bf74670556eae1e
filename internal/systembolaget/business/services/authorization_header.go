package services

import (
	"net/http"
)

type AuthEngine interface {
	GetApiKey() string
	SetApiKey(request *http.Request)
}

// SubscriptionKeyAuth applies the remote catalog's subscription key
// header to outgoing requests. An empty key sends no header at all.
type SubscriptionKeyAuth struct {
	header string
	apiKey string
}

func (a *SubscriptionKeyAuth) GetApiKey() string {
	return a.apiKey
}

func (a *SubscriptionKeyAuth) SetApiKey(request *http.Request) {
	if a.apiKey == "" {
		return
	}
	request.Header.Set(a.header, a.apiKey)
}

func NewSubscriptionKeyAuth(header, apiKey string) *SubscriptionKeyAuth {
	return &SubscriptionKeyAuth{header: header, apiKey: apiKey}
}
