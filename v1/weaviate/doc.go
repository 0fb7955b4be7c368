// Package weaviate is a typed client for the REST and GraphQL API of a
// Weaviate vector database.
//
// # Client
//
// A [Client] groups the API by resource. Every operation takes a context,
// returns typed models from the models package and sends exactly one
// request unless it waits on a job:
//
//	cfg, err := weaviate.FromURL("http://localhost:8080")
//	if err != nil {
//	    return err
//	}
//	client, err := weaviate.NewClient(cfg, weaviate.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	article := models.NewClass("Article").
//	    WithProperty(models.NewProperty("title", models.DataTypeText).Build()).
//	    WithVectorizer(models.VectorizerNone).
//	    Build()
//	if _, err := client.Schema.CreateClass(ctx, article); err != nil {
//	    return err
//	}
//
// # Errors
//
// Bad input is rejected before any request with a *[ValidationError].
// A response outside the accepted statuses is a *[RequestError] carrying
// the status and raw body; errors.Is(err, [ErrNotFound]) matches 404. A
// success response that does not decode is a *[DecodeError], and a
// request that got no response at all is a *[TransportError]. Requests
// are never retried.
//
// # Jobs
//
// Backups.Create, Backups.Restore and Classification.Schedule start
// server side jobs. With wait set they check the job status every
// [PollConfig].Interval until it is terminal and return the final status,
// also when the job failed. The context bounds the wait.
//
// # Queries
//
// Query runs documents built with the graphql package. A response whose
// errors array is not empty is still returned; Response.Err reports it.
//
// # Configuration
//
// [NewConfig] reads WEAVIATE_* environment variables and [LoadConfig]
// reads a YAML or TOML file. [FXModule] wires the client, its vectordb
// adapter and the optional logger, metrics and tracer into an fx
// application.
package weaviate
