package sampleservice

import (
	"context"
	"time"

	"github.com/carterkozak/dialogue"
	"github.com/carterkozak/dialogue/bodyserde"
	"github.com/carterkozak/dialogue/futures"
	"github.com/carterkozak/dialogue/plainserde"
)

// NewAsync returns an asynchronous SampleService implementation whose calls
// are executed on the given channel.
func NewAsync(channel dialogue.Channel, runtime *bodyserde.Runtime) AsyncSampleService {
	return &asyncClient{
		channel:      channel,
		serializer:   bodyserde.SerializerFor[SampleObject](runtime.BodySerDe()),
		deserializer: bodyserde.DeserializerFor[SampleObject](runtime.BodySerDe()),
		emptyBody:    runtime.EmptyBodyDeserializer(),
		plain:        runtime.PlainSerDe(),
	}
}

// NewBlocking returns a blocking SampleService implementation whose calls
// are executed on the given channel. callTimeout bounds the end-to-end life
// time of each call; exceeding it yields a timeout failure without
// cancelling the in-flight call.
func NewBlocking(channel dialogue.Channel, runtime *bodyserde.Runtime, callTimeout time.Duration) SampleService {
	return &blockingClient{
		async:   NewAsync(channel, runtime),
		timeout: callTimeout,
	}
}

type asyncClient struct {
	channel      dialogue.Channel
	serializer   bodyserde.TypedSerializer[SampleObject]
	deserializer bodyserde.TypedDeserializer[SampleObject]
	emptyBody    bodyserde.Deserializer
	plain        plainserde.SerDe
}

func (c *asyncClient) ObjectToObject(objectID string, header time.Time, query []plainserde.ResourceIdentifier, body SampleObject) *futures.Future[SampleObject] {
	if objectID == "" {
		return futures.Failed[SampleObject](dialogue.NewPreconditionError("objectId parameter must not be empty", "objectId"))
	}
	if header.IsZero() {
		return futures.Failed[SampleObject](dialogue.NewPreconditionError("header parameter must not be empty", "header"))
	}
	requestBody, err := c.serializer.Serialize(body)
	if err != nil {
		return futures.Failed[SampleObject](err)
	}
	request := dialogue.NewRequest().
		PutPathParam("objectId", c.plain.SerializeString(objectID)).
		PutHeaderParam("headerKey", c.plain.SerializeDateTime(header)).
		PutAllQueryParams("queryKey", plainserde.SerializeList(query, c.plain.SerializeRID)...).
		Body(requestBody).
		Build()

	call := futures.Call(context.Background(), func(ctx context.Context) (dialogue.Response, error) {
		return c.channel.Execute(ctx, objectToObjectEndpoint, request)
	})
	return futures.Transform(call, func(response dialogue.Response) (SampleObject, error) {
		return c.deserializer.Deserialize(response)
	})
}

func (c *asyncClient) VoidToVoid() *futures.Future[struct{}] {
	request := dialogue.NewRequest().Build()

	call := futures.Call(context.Background(), func(ctx context.Context) (dialogue.Response, error) {
		return c.channel.Execute(ctx, voidToVoidEndpoint, request)
	})
	return futures.Transform(call, func(response dialogue.Response) (struct{}, error) {
		_, err := c.emptyBody.Deserialize(response)
		return struct{}{}, err
	})
}

type blockingClient struct {
	async   AsyncSampleService
	timeout time.Duration
}

func (c *blockingClient) ObjectToObject(objectID string, header time.Time, query []plainserde.ResourceIdentifier, body SampleObject) (SampleObject, error) {
	return c.async.ObjectToObject(objectID, header, query, body).Await(c.timeout)
}

func (c *blockingClient) VoidToVoid() error {
	_, err := c.async.VoidToVoid().Await(c.timeout)
	return err
}
