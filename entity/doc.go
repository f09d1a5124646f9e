// Package entity parses the entity lump: a text blob of
//
//	{
//	"classname" "light"
//	"origin" "1 2 3"
//	"_light" "255 255 255 200"
//	}
//
// blocks, one per entity, each a sequence of quoted key/value pairs.
//
// RawEntity exposes the untyped property bag of one block without copying
// the text. Parse maps it onto a typed record chosen by its classname:
//
//	for raw := range ents.All() {
//	    ent, err := raw.Parse()
//	    if err != nil {
//	        continue // malformed record, the rest of the map is fine
//	    }
//	    switch e := ent.(type) {
//	    case *entity.Light:
//	        fmt.Println(e.Origin, e.Light)
//	    case *entity.Unknown:
//	        fmt.Println(e.Raw.ClassName())
//	    }
//	}
//
// A typed record either parses completely or not at all; conversion
// failures are reported as *errs.PropertyError naming the property.
// Classes without a record parse to *Unknown and never fail.
package entity
