// Package votesmart provides a client for the Project Vote Smart API.
//
// Project Vote Smart publishes data on US candidates, officials, elections,
// ballot measures, interest group ratings and legislative votes. Every remote
// operation is a GET against http://api.votesmart.org/<Namespace.method>
// returning a JSON envelope.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Operations: a declarative table describing every remote call, its
//     parameters, the envelope path to its payload and the result shape
//   - Dispatcher: builds the request, performs it and classifies failures
//   - Mapper: turns payload nodes into Records, collapsing the service's
//     singleton lists and unwrapping Address, Election and BillDetail
//   - Services: typed wrappers, one per namespace (Client.Candidates, ...)
//   - Errors: sentinels plus TransportError, ServiceError and DecodeError
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client := votesmart.NewClient("your-api-key", logger,
//		votesmart.WithTimeout(10*time.Second),
//	)
//
//	ctx := context.Background()
//	candidates, err := client.Candidates.GetByOfficeState(ctx, "6", "NY", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Any operation is also reachable by its qualified name:
//
//	records, err := client.Invoke(ctx, "Election.getElection", votesmart.Params{
//		"electionId": "1234",
//	})
//	for _, r := range records {
//		fmt.Println(r.Display())
//	}
//
// # Error Handling
//
// Every error can be classified with KindOf:
//
//   - KindMissingCredential: no API key; nothing was sent
//   - KindTransportFailure: network error or non-2xx status
//   - KindServiceError: the envelope carried an "error" object
//   - KindDecodeFailure: the body was not JSON or did not match the table
//
// The concrete types carry more detail:
//
//	var svcErr *votesmart.ServiceError
//	if errors.As(err, &svcErr) {
//		log.Printf("service said: %s", svcErr.Message)
//	}
package votesmart
