// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, tree *Tree, method, path string, data any, domain string) *Node {
	t.Helper()
	n, _, err := tree.AddRoute(method, path, data, domain)
	require.NoError(t, err)
	return n
}

func find(t *testing.T, tree *Tree, method, path, hostname string) LookupResult {
	t.Helper()
	return tree.Find(method, path, hostname)
}

func params(t *testing.T, res LookupResult) map[string]string {
	t.Helper()
	return ExtractParams(res.Record, res.Segments)
}

func TestTree_StaticParamWildcardPrecedence(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/test/{id}", "G", "")
	mustAdd(t, tree, "GET", "/test/{idY}/y", "H", "")
	mustAdd(t, tree, "GET", "/test/foo/{segment}", "I", "")
	mustAdd(t, tree, "GET", "/test/foo/{...wildcard}", "J", "")

	res := find(t, tree, "GET", "/test/123/y", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "H", res.Record.Data)
	assert.Equal(t, "123", params(t, res)["idY"])

	res = find(t, tree, "GET", "/test/123", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "G", res.Record.Data)

	res = find(t, tree, "GET", "/test/foo/a/b", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "J", res.Record.Data)
	assert.Equal(t, "a/b", params(t, res)["wildcard"])

	res = find(t, tree, "GET", "/test/foo/123", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "I", res.Record.Data, "static-then-param precedence must prefer the static segment")
}

func TestTree_MixedSegmentRegexTieBreak(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/npm/{p1}/{p2}", "L", "")
	mustAdd(t, tree, "GET", "/npm/@{p1}/{p2}", "M", "")

	res := find(t, tree, "GET", "/npm/@alice/pkg", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "M", res.Record.Data)
	assert.Equal(t, map[string]string{"p1": "alice", "p2": "pkg"}, params(t, res))

	res = find(t, tree, "GET", "/npm/alice/pkg", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "L", res.Record.Data)
	assert.Equal(t, map[string]string{"p1": "alice", "p2": "pkg"}, params(t, res))
}

func TestTree_MixedSegmentNamedGroups(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/files/{category}/{id},name={name}.txt", "N", "")

	res := find(t, tree, "GET", "/files/img/42,name=logo.txt", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, map[string]string{"category": "img", "id": "42", "name": "logo"}, params(t, res))
}

func TestTree_CatchAllMatchesZeroSegments(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/wildcard/{...w}", "O", "")

	res := find(t, tree, "GET", "/wildcard", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "", params(t, res)["w"])
}

func TestTree_ParamDoesNotMatchZeroSegments(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/blog/{slug}", "K", "")

	res := find(t, tree, "GET", "/blog", "")
	assert.Equal(t, StatusNotFound, res.Status)
}

func TestTree_EmptyInteriorSegmentIsLiteralNotParam(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/test//route", "Z", "")
	mustAdd(t, tree, "GET", "/test/{p}/route", "Y", "")

	res := find(t, tree, "GET", "/test//route", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "Z", res.Record.Data)
}

func TestTree_TrailingSlashIgnored(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/test", "F", "")

	res := find(t, tree, "GET", "/test/", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.True(t, res.Static, "a parameter-free, domain-free route must resolve via the static cache")
	assert.Equal(t, "F", res.Record.Data)
}

func TestTree_StaticMapDoesNotResolveReservedKeys(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/blog/{slug}", "K", "")

	res := find(t, tree, "GET", "/blog/constructor", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "K", res.Record.Data, "constructor must be captured as a param value, never resolved as an inherited key")
}

func TestTree_DomainScoping(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/users", "P", "api.example.com")
	mustAdd(t, tree, "GET", "/users", "Q", "")
	mustAdd(t, tree, "POST", "/users", "R", "")
	mustAdd(t, tree, "GET", "/dashboard", "S", "{customer}.example.com")

	res := find(t, tree, "GET", "/users", "api.example.com")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "P", res.Record.Data)

	res = find(t, tree, "GET", "/users", "other.example.com")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "Q", res.Record.Data, "an unmatched hostname falls back to the domain-agnostic route")

	res = find(t, tree, "POST", "/users", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "R", res.Record.Data)

	res = find(t, tree, "DELETE", "/users", "")
	assert.Equal(t, StatusMethodMismatch, res.Status)

	res = find(t, tree, "GET", "/dashboard", "acme.example.com")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "S", res.Record.Data)
	assert.Equal(t, "acme", params(t, res)["customer"])
}

func TestTree_MethodMismatchVsNotFound(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/users", "Q", "")

	res := find(t, tree, "DELETE", "/users", "")
	assert.Equal(t, StatusMethodMismatch, res.Status)

	res = find(t, tree, "GET", "/nonexistent", "")
	assert.Equal(t, StatusNotFound, res.Status)
}

func TestTree_MethodMismatchOnZeroSegmentCatchAll(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "POST", "/files/{...rest}", "upload", "")

	res := find(t, tree, "GET", "/files", "")
	assert.Equal(t, StatusMethodMismatch, res.Status)
}

func TestTree_AnyMethodFallback(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "", "/health", "any", "")

	res := find(t, tree, "GET", "/health", "")
	require.Equal(t, StatusMatch, res.Status)
	res = find(t, tree, "POST", "/health", "")
	require.Equal(t, StatusMatch, res.Status)
}

func TestTree_DuplicateInsertFirstWins(t *testing.T) {
	tree := NewTree()
	mustAdd(t, tree, "GET", "/dup", "first", "")
	mustAdd(t, tree, "GET", "/dup", "second", "")

	res := find(t, tree, "GET", "/dup", "")
	require.Equal(t, StatusMatch, res.Status)
	assert.Equal(t, "first", res.Record.Data)
}

func TestTree_MisplacedWildcardIsRejected(t *testing.T) {
	tree := NewTree()
	_, _, err := tree.AddRoute("GET", "/files/{...rest}/extra", "bad", "")
	assert.ErrorIs(t, err, ErrMisplacedWildcard)
}

func TestTree_InvalidTemplateIsRejected(t *testing.T) {
	tree := NewTree()
	_, _, err := tree.AddRoute("GET", "/files/{unterminated", "bad", "")
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestTree_ShadowedInsertIsReported(t *testing.T) {
	tree := NewTree()
	_, shadowed, err := tree.AddRoute("GET", "/dup", "first", "")
	require.NoError(t, err)
	assert.False(t, shadowed)

	_, shadowed, err = tree.AddRoute("GET", "/dup", "second", "")
	require.NoError(t, err)
	assert.True(t, shadowed)
}
