// Package modelx extends already-registered entity models with
// supplementary declarative definitions at application boot.
//
// A host application registers its models once, then lets modelx merge
// per-model definition documents (properties, relations, mixins and
// freeform settings) into the registered handles before the
// application starts serving:
//
//	reg := modelx.NewRegistry()
//	reg.MustDefine("User")
//	reg.MustDefine("Customer")
//
//	err := extend.Extend(reg, "User",
//	    extend.WithFolderPath("config/models"),
//	    extend.WithBehavior("User", func(m *modelx.Model) error {
//	        m.SetMethod("greet", func(...any) (any, error) {
//	            return "hello", nil
//	        })
//	        return nil
//	    }),
//	)
//
// The definition document for a model is a JSON or YAML file:
//
//	{
//	    "mysql": {"table": "user"},
//	    "properties": {
//	        "emailVerified": {"type": "boolean"}
//	    },
//	    "relations": {
//	        "customer": {
//	            "type": "hasOne",
//	            "model": "Customer",
//	            "foreignKey": "customerId"
//	        }
//	    }
//	}
//
// Extension never creates a model; it only mutates the settings,
// properties, relations and mixins of handles that already exist in
// the registry. The reserved document keys "name" and "base" are
// ignored.
//
// # Packages
//
//   - [github.com/syssam/modelx/definition]: definition documents,
//     file loading and path resolution
//   - [github.com/syssam/modelx/extend]: the extension pass
//   - [github.com/syssam/modelx/mixin]: ready-to-use mixins
//   - [github.com/syssam/modelx/gen]: constants code generation for
//     extended models
package modelx
