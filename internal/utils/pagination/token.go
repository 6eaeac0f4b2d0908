package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetPrefix = "offset"

// EncodeOffsetToken creates an opaque base64 token pointing at offset.
func EncodeOffsetToken(offset int) string {
	return EncodeMultiFieldToken(offsetPrefix, strconv.Itoa(offset))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken.
// An empty token decodes to offset zero.
func DecodeOffsetToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != offsetPrefix {
		return 0, fmt.Errorf("invalid pagination token format (fields)")
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset)")
	}
	return offset, nil
}

// Page slices items starting at the offset encoded in token. A limit of zero
// returns every remaining item. The returned token is empty on the last page.
func Page[T any](items []T, limit int, token string) ([]T, string, error) {
	offset, err := DecodeOffsetToken(token)
	if err != nil {
		return nil, "", err
	}
	if offset >= len(items) {
		return []T{}, "", nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	next := ""
	if end < len(items) {
		next = EncodeOffsetToken(end)
	}
	return items[offset:end], next, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
