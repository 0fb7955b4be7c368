// Package graphql builds the GraphQL documents the Weaviate query endpoint
// accepts and decodes its responses.
//
// Get, Aggregate and Explore are immutable builders. Build renders the
// document and rejects combinations the server would refuse, such as two
// search operators on the same Get. Render additionally parses the result
// with gqlparser so that malformed raw fragments fail before a request is
// made.
//
//	q := graphql.Get("Article", "title").
//		WithAdditional("id", "distance").
//		WithNearText(graphql.NewNearText("fashion").WithDistance(0.6)).
//		WithLimit(5)
//
//	resp, err := client.Query.Get(ctx, q)
//	if err != nil {
//		return err
//	}
//	objs, err := resp.GetObjects("Article")
//
// A response that carries an errors array is still returned without error
// by the client. Response.Err converts the array into a *QueryError.
package graphql
