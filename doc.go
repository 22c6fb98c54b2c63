// Package noted is the core of a local note-taking tool.
//
// It wires together compact TinyId identifiers (package tinyid), the snapshot
// persistence layer (packages codec and service/persist) and the note
// repository (service/dao/note) behind a small façade:
//
//	srv, _ := noted.New(noted.WithConfig(cfg))
//	_ = srv.Open(ctx)
//	n, _ := srv.Notes().Create(ctx, "Hello", "")
//	fmt.Println(n.ID) // e.g. 2NEpo7TZRRr
//	_ = srv.Close(ctx)
//
// Configuration can be read from YAML or JSON with LoadConfig.
package noted
