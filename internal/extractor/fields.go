package extractor

import (
	"fmt"
	"reflect"
	"sort"

	"idvex/internal/domain"
)

// unwrapEnvelope strips the value envelopes document fields arrive in:
// {Value: x} and {RawData: {Value: x}}. The returned suffix is appended to
// the field's recorded path; only the RawData form changes the path.
func unwrapEnvelope(v any) (value any, suffix string, wrapped bool) {
	if m, ok := asMap(v); ok {
		if inner, present := m["Value"]; present {
			return inner, "", true
		}
		if raw, ok := asMap(m["RawData"]); ok {
			if inner, present := raw["Value"]; present {
				return inner, ".RawData.Value", true
			}
		}
	}
	return v, "", false
}

// dataSourceOf pulls the capture-source marker off a field envelope, checking
// the envelope itself and then its RawData block.
func dataSourceOf(v any) (value any, suffix string, ok bool) {
	m, isMap := asMap(v)
	if !isMap {
		return nil, "", false
	}
	if ds, present := m["dataSource"]; present {
		return ds, ".dataSource", true
	}
	if raw, isRaw := asMap(m["RawData"]); isRaw {
		if ds, present := raw["dataSource"]; present {
			return ds, ".RawData.dataSource", true
		}
	}
	return nil, "", false
}

// sortedKeys returns a map's keys in sorted order so field maps are filled
// deterministically.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extractDocData2 flattens a single DocumentData2 block into the metadata
// field and path maps. Null fields are dropped unless they arrive wrapped in
// an envelope. withDataSource additionally records each field's capture
// source marker.
func extractDocData2(meta *domain.Metadata, docData2 map[string]any, basePath string, withDataSource bool) {
	for _, key := range sortedKeys(docData2) {
		raw := docData2[key]
		value, suffix, wrapped := unwrapEnvelope(raw)
		if value == nil && !wrapped {
			continue
		}
		meta.DocumentData2Fields[key] = value
		meta.DocumentData2Paths[key] = basePath + "." + key + suffix

		if withDataSource {
			if ds, dsSuffix, ok := dataSourceOf(raw); ok {
				setDataSource(meta, key, ds, basePath+"."+key+dsSuffix)
			}
		}
	}
	meta.DocumentData2Source = basePath
}

// pageField reads one field off a page's DocumentData2 block. present is key
// existence; a null stored under the key still counts as a page-side value.
func pageField(docData2 map[string]any, key string) (value any, present bool) {
	raw, present := docData2[key]
	if !present {
		return nil, false
	}
	value, _, _ = unwrapEnvelope(raw)
	return value, true
}

// extractTwoPageDocData2 reconciles the front and back page DocumentData2
// blocks when the page-mismatch remark is set. Fields equal on both pages
// collapse to one entry annotated "Same on both pages"; diverging or
// one-sided fields get _front/_back suffixed entries. Capture source markers
// follow the same suffixing, with an extra bare-key entry when the pages
// agree.
func extractTwoPageDocData2(meta *domain.Metadata, pages []any, rootPath string) {
	front, _ := digMap(pages[0], "ProcessingResult", "DocumentData2")
	back, _ := digMap(pages[1], "ProcessingResult", "DocumentData2")

	keySet := make(map[string]bool, len(front)+len(back))
	for k := range front {
		keySet[k] = true
	}
	for k := range back {
		keySet[k] = true
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	frontPath := func(key string) string {
		return fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[0].ProcessingResult.DocumentData2.%s", rootPath, key)
	}
	backPath := func(key string) string {
		return fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[1].ProcessingResult.DocumentData2.%s", rootPath, key)
	}

	for _, key := range keys {
		v0, ok0 := pageField(front, key)
		v1, ok1 := pageField(back, key)
		bothEqual := ok0 && ok1 && reflect.DeepEqual(v0, v1)

		switch {
		case bothEqual:
			meta.DocumentData2Fields[key] = v0
			meta.DocumentData2Paths[key] = fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[0/1].ProcessingResult.DocumentData2.%s", rootPath, key)
			setCompare(meta, key, "Same on both pages")
		case ok0 && ok1:
			meta.DocumentData2Fields[key+"_front"] = v0
			meta.DocumentData2Paths[key+"_front"] = frontPath(key)
			meta.DocumentData2Fields[key+"_back"] = v1
			meta.DocumentData2Paths[key+"_back"] = backPath(key)
			setCompare(meta, key+"_front", "Front")
			setCompare(meta, key+"_back", "Back")
		case ok0:
			meta.DocumentData2Fields[key+"_front"] = v0
			meta.DocumentData2Paths[key+"_front"] = frontPath(key)
			setCompare(meta, key+"_front", "Front")
		case ok1:
			meta.DocumentData2Fields[key+"_back"] = v1
			meta.DocumentData2Paths[key+"_back"] = backPath(key)
			setCompare(meta, key+"_back", "Back")
		}

		dsFront, dsFrontSuffix, okFront := dataSourceOf(front[key])
		if okFront {
			setDataSource(meta, key+"_front", dsFront, frontPath(key)+dsFrontSuffix)
		}
		if dsBack, dsBackSuffix, okBack := dataSourceOf(back[key]); okBack {
			setDataSource(meta, key+"_back", dsBack, backPath(key)+dsBackSuffix)
		}
		if bothEqual && okFront {
			setDataSource(meta, key, dsFront, frontPath(key)+dsFrontSuffix)
		}
	}
	meta.DocumentData2Source = fmt.Sprintf("%s.PageAsSeparateDocumentProcessingReports[0/1].ProcessingResult.DocumentData2", rootPath)
}

// locateDocData2 finds the single-block DocumentData2 for the generic path,
// trying the standard nesting first, then the flattened sub-tree form, then
// the document root.
func locateDocData2(subTree, root any, rootPath string) (map[string]any, string, bool) {
	if block, ok := digMap(subTree, "ProcessingResult", "DocumentData2"); ok && truthy(block) {
		return block, rootPath + ".ProcessingResult.DocumentData2", true
	}
	if block, ok := digMap(subTree, "DocumentData2"); ok && truthy(block) {
		return block, rootPath + ".DocumentData2", true
	}
	if block, ok := digMap(root, "DocumentData2"); ok && truthy(block) {
		return block, "DocumentData2", true
	}
	return nil, "", false
}

func setCompare(meta *domain.Metadata, key, label string) {
	if meta.DocumentData2Compare == nil {
		meta.DocumentData2Compare = make(map[string]string)
	}
	meta.DocumentData2Compare[key] = label
}

func setDataSource(meta *domain.Metadata, key string, value any, path string) {
	if meta.DocumentData2DataSource == nil {
		meta.DocumentData2DataSource = make(map[string]any)
	}
	if meta.DocumentData2DataSourcePaths == nil {
		meta.DocumentData2DataSourcePaths = make(map[string]string)
	}
	meta.DocumentData2DataSource[key] = value
	meta.DocumentData2DataSourcePaths[key] = path
}
