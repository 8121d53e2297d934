package cli

import (
	"fmt"

	"github.com/agentlint/agentlint/internal/adapters/outbound/tui"
	"github.com/agentlint/agentlint/internal/application"
	"github.com/agentlint/agentlint/internal/domain"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run canned validation examples",
		Long:  "Validate three canned agent outputs (high-quality, low-quality, and one leaking credentials) and print their reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			svc := application.NewValidateService(domain.DefaultConfig())

			fmt.Fprintln(out, "Demo 1: high-quality agent output")
			fmt.Fprint(out, tui.RenderResult(svc.ValidateText(demoGoodOutput, "Engineering Lead")))

			fmt.Fprintln(out, "Demo 2: low-quality agent output")
			fmt.Fprint(out, tui.RenderResult(svc.ValidateText(demoPoorOutput, "Backend Engineer")))

			fmt.Fprintln(out, "Demo 3: production readiness (exposed credentials)")
			prod := application.NewProductionService()
			fmt.Fprint(out, tui.RenderResult(prod.ValidateText(demoInsecureOutput, "Security Review")))

			return nil
		},
	}
}

const demoGoodOutput = `# Architecture Plan for Task Management Application

## Executive Summary

Based on analysis of the requirements, I recommend a microservices
architecture built on FastAPI, PostgreSQL 15, Redis 7.0, and RabbitMQ.
FastAPI specifically provides excellent performance while keeping
developer productivity high.

## Implementation Example

` + "```python" + `
from fastapi import FastAPI, Depends, HTTPException

app = FastAPI()

@app.post("/tasks", response_model=TaskResponse)
async def create_task(task: TaskCreate, db: Session = Depends(get_db)):
    db_task = Task(**task.dict())
    db.add(db_task)
    db.commit()
    return db_task
` + "```" + `

## Specific Recommendations

1. Use database migrations: implement Alembic for schema version control
2. Implement rate limiting: prevent abuse with Redis-based rate limiting
3. Add observability: use Prometheus and Grafana for monitoring

## Cost Estimates

For example, AWS infrastructure runs ~$500/month on t3.medium instances,
RDS PostgreSQL ~$200/month, and Redis ~$50/month: ~$750/month total.

## Next Steps

Step 1: Set up development environment
Step 2: Implement authentication service
Step 3: Create database schema and migrations`

const demoPoorOutput = `I think you should maybe use FastAPI or perhaps Django.
TODO: add more details here.

You could consider using PostgreSQL or MongoDB.

[YOUR_API_KEY] should be set in environment.

This is a basic approach that might work.`

const demoInsecureOutput = `# API Configuration

Here's the setup:

` + "```python" + `
API_KEY = "sk-1234567890abcdef"
PASSWORD = "admin123"
SECRET_KEY = "my-secret-key"

def connect():
    client = Client(api_key=API_KEY)
    return client
` + "```" + `

This should work for your setup.`
