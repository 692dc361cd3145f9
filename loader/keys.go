package loader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nagaozen/schematools/schemaerrors"
)

// keyReplacer turns path separators into the stable key delimiter. Colons
// never occur as separators inside a single path element, so external
// document keys and compound anchor keys cannot collide for the same root.
var keyReplacer = strings.NewReplacer("/", ":", "\\", ":")

// referenceKey derives the definition-table key for a resolved address or
// anchor path by replacing every path separator with a colon.
func referenceKey(address string) string {
	return keyReplacer.Replace(address)
}

// anchorKey derives the definition-table key for a local definition of the
// document identified by ownerKey.
func anchorKey(ownerKey, name string) string {
	return ownerKey + ":$defs:" + referenceKey(name)
}

// defsRef renders the rewritten local reference for a definition-table key.
func defsRef(key string) string {
	return "#/$defs/" + key
}

// resolveAddress resolves uri against basepath and extracts the scheme used
// for provider dispatch. A result without a scheme is dispatched to the
// "file" provider, so plain filesystem paths work without a file:// prefix.
func resolveAddress(uri, basepath string) (address, scheme string, err error) {
	ref, err := url.Parse(uri)
	if err != nil {
		return "", "", &schemaerrors.PathError{
			Path:    uri,
			Message: "invalid URI",
			Cause:   err,
		}
	}

	resolved := ref
	if basepath != "" && !ref.IsAbs() {
		base, err := url.Parse(basepath)
		if err != nil {
			return "", "", &schemaerrors.PathError{
				Path:    basepath,
				Message: "invalid base path",
				Cause:   err,
			}
		}
		resolved = base.ResolveReference(ref)
	}

	scheme = strings.ToLower(resolved.Scheme)
	if scheme == "" {
		scheme = "file"
	}
	return resolved.String(), scheme, nil
}

// localizationAddress derives the sidecar address for a document by
// substituting the conventional ".schema.json" suffix with the language
// code. Documents without the conventional suffix get the language code
// spliced in before their final extension.
func localizationAddress(address, lang string) string {
	if strings.HasSuffix(address, ".schema.json") {
		return strings.TrimSuffix(address, ".schema.json") + "." + lang + ".json"
	}
	if idx := strings.LastIndex(address, "."); idx > strings.LastIndex(address, "/") {
		return fmt.Sprintf("%s.%s%s", address[:idx], lang, address[idx:])
	}
	return address + "." + lang
}

// anchorName extracts the local definition name from a fragment reference.
// "#/$defs/positiveInteger", "#/positiveInteger" and "#positiveInteger" all
// name the same local definition; "#" and "#/" name the owning document
// itself and yield the empty string.
func anchorName(ref string) string {
	name := strings.TrimPrefix(ref, "#")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimPrefix(name, "$defs/")
	return name
}
