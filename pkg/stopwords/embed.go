package stopwords

import (
	"embed"
	"io/fs"
)

//go:embed resources
var embedded embed.FS

// Resources holds the stop word lists bundled with the library. Resource
// paths are relative to the resources directory, e.g. "english.txt". The
// customListResourcesFilePath property resolves against it unless the caller
// supplies another file system through ResolveFS.
var Resources fs.FS

func init() {
	sub, err := fs.Sub(embedded, "resources")
	if err != nil {
		panic(err)
	}
	Resources = sub
}
