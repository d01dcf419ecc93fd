package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type otlpConnConfig struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

type otlpConfig struct {
	Traces  otlpConnConfig `json:"traces"`
	Metrics otlpConnConfig `json:"metrics"`
}

type config struct {
	Otlp otlpConfig `json:"otlp"`
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newTraceProvider(ctx context.Context, r *resource.Resource, cfg config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlpTraceExporterFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r),
	), nil
}

func otlpTraceExporterFromConfig(ctx context.Context, cfg config) (sdktrace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if cfg.Otlp.Traces.GrpcEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(cfg.Otlp.Traces.GrpcEndpoint),
			otlptracegrpc.WithHeaders(cfg.Otlp.Traces.Headers),
		)
	}
	if cfg.Otlp.Traces.HttpEndpoint != "" {
		return otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpointURL(cfg.Otlp.Traces.HttpEndpoint),
			otlptracehttp.WithHeaders(cfg.Otlp.Traces.Headers),
		)
	}
	return nil, fmt.Errorf("no otlp trace endpoint specified")
}

func newMetricProvider(ctx context.Context, r *resource.Resource, cfg config) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpMetricExporterFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(r),
	), nil
}

func otlpMetricExporterFromConfig(ctx context.Context, cfg config) (sdkmetric.Exporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if cfg.Otlp.Metrics.GrpcEndpoint != "" {
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(cfg.Otlp.Metrics.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(cfg.Otlp.Metrics.Headers),
		)
	}
	if cfg.Otlp.Metrics.HttpEndpoint != "" {
		return otlpmetrichttp.New(
			ctx,
			otlpmetrichttp.WithEndpointURL(cfg.Otlp.Metrics.HttpEndpoint),
			otlpmetrichttp.WithHeaders(cfg.Otlp.Metrics.Headers),
		)
	}
	return nil, fmt.Errorf("no otlp metric endpoint specified")
}
