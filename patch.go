package wordjson

import (
	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON Patch to doc and parses the result
// into a brand-new Document; it never mutates doc or its backing buffer.
// doc is first serialized in compact form, then patched, then re-parsed
// with the same allocation strategy doc itself would use by default
// (SingleAllocation) unless overridden by strategy.
func ApplyPatch(doc *Document, patchJSON []byte, strategy AllocationStrategy) (*Document, error) {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}

	sink := NewBufferSink()
	Serialize(doc.Root(), sink, FormatOptions{Style: Compact})

	patched, err := patch.Apply(sink.Bytes())
	if err != nil {
		return nil, err
	}
	return ParseBytes(patched, strategy), nil
}
