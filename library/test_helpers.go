package library

import "github.com/stretchr/testify/mock"

// MatchMember creates a custom matcher for member arguments in mocks
func MatchMember(matcher func(Member) bool) interface{} {
	return mock.MatchedBy(matcher)
}
